package cli

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// TraceEnv is the environment variable that enables dispatch tracing on STDERR when set to a truthy value.
const TraceEnv = "CMDARGS_TRACE"

var logger atomic.Pointer[slog.Logger]

func init() {
	if envBool(TraceEnv, false) {
		SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		return
	}
	SetLogger(nil)
}

// SetLogger sets the [slog.Logger] used to trace dispatch decisions.
// Records are logged at [slog.LevelDebug].
// Passing nil discards all records.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}

func log() *slog.Logger {
	return logger.Load()
}
