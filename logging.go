package z3

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger installs the logger used for handle lifecycle tracing and
// native error reports. Records are emitted at debug level. Passing nil
// restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	loggerPtr.Store(l)
}

type logProxy struct{}

// logger forwards to whatever SetLogger installed last.
var logger logProxy

func (logProxy) Debug(msg string, args ...any) {
	loggerPtr.Load().Debug(msg, args...)
}
