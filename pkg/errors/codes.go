package errors

// ErrorCode is a string identifier for a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK           ErrorCode = "OK"
	CodeUnknown      ErrorCode = "COMMON_000"
	CodeInternal     ErrorCode = "COMMON_001"
	CodeInvalidParam ErrorCode = "COMMON_002"
	CodeNotFound     ErrorCode = "COMMON_003"
	CodeIO           ErrorCode = "COMMON_004"
	CodeConfig       ErrorCode = "COMMON_005"
)

// Structure-analysis error codes.
const (
	// CodeInvalidSMILES marks a structure token that cannot be parsed into a
	// molecular graph.  The batch driver treats it as a skippable warning.
	CodeInvalidSMILES ErrorCode = "CHEM_001"

	// CodeMissingDescriptor marks a descriptor record that lacks a field
	// required by rule evaluation. Such a record is an upstream contract
	// violation, not a rule failure.
	CodeMissingDescriptor ErrorCode = "CHEM_002"
)

// Report / export error codes.
const (
	CodeReportParse ErrorCode = "RPT_001"
	CodeExportWrite ErrorCode = "RPT_002"
)
