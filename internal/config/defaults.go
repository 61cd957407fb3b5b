package config

// Default value constants.  The report and CSV names match the files the
// original screening workflow produced, so existing downstream scripts keep
// working without configuration.
const (
	DefaultReportPath = "new_properties.txt"
	DefaultCSVPath    = "cleaned_data.csv"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ApplyDefaults fills every zero-value field in cfg with the tool default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  It must run after unmarshalling and before
// Validate so that optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Screen.ReportPath == "" {
		cfg.Screen.ReportPath = DefaultReportPath
	}
	if cfg.Screen.CSVPath == "" {
		cfg.Screen.CSVPath = DefaultCSVPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
