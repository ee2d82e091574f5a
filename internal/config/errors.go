package config

// ErrCodeConfig categorizes configuration failures.
const ErrCodeConfig = "HBSLINT_CONFIG"

// Configuration error messages.
const (
	ErrMsgConfigNotFound  = "config file not found"
	ErrMsgConfigRead      = "reading config file failed"
	ErrMsgConfigParse     = "parsing config file failed"
	ErrMsgInvalidSeverity = "invalid rule severity (want error, warn or off)"
	ErrMsgInvalidExclude  = "invalid exclude pattern"
	ErrMsgInvalidJobs     = "jobs must not be negative"
	ErrMsgEmptyMethod     = "render.method must not be empty"
	ErrMsgEmptyTag        = "render.tag must not be empty"
)

// Metadata keys attached to configuration errors.
const (
	MetaKeyPath  = "path"
	MetaKeyRule  = "rule"
	MetaKeyValue = "value"
)
