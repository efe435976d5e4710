package runescan

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Scans report malformed input at
// debug level. This must be called before any scan runs concurrently.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// traceStop records a scan ended early by malformed input.
func traceStop(op string, offset int, st status) {
	if !st.failed() {
		return
	}
	if ce := Logger().Check(zap.DebugLevel, "scan stopped on malformed input"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("offset", offset),
			zap.Stringer("reason", st),
		)
	}
}
