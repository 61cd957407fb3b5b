package descriptor

import "context"

// StructureAnalyzer is the narrow capability boundary to the structure-
// analysis library.  Given a structural notation token it either returns a
// fully populated descriptor record (every field of FieldOrder set, Name
// left empty for the caller) or a typed parse failure
// (errors.CodeInvalidSMILES).
//
// Keeping the boundary this narrow lets the rule engine and the tabular
// pipeline be tested with synthetic records, independent of any real
// cheminformatics implementation.
type StructureAnalyzer interface {
	Analyze(ctx context.Context, token string) (*Record, error)
}
