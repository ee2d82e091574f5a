package runner

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log messages.
const (
	LogMsgConfigLoaded  = "config loaded"
	LogMsgUnknownRule   = "config names unknown rule"
	LogMsgFilesFound    = "files discovered"
	LogMsgFileLinted    = "file linted"
	LogMsgFileFailed    = "file failed"
	LogMsgPathExcluded  = "path excluded"
	LogMsgLintCancelled = "lint cancelled"
)

// Log field keys.
const (
	LogKeyPath        = "path"
	LogKeyRule        = "rule"
	LogKeyFiles       = "files"
	LogKeyJobs        = "jobs"
	LogKeyCalls       = "calls"
	LogKeyDiagnostics = "diagnostics"
)

// NewLogger returns a console logger writing debug output to w when
// verbose is set, and a no-op logger otherwise.
func NewLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
