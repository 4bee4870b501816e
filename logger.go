package viewport

import (
	"log/slog"

	"github.com/gogpu/viewport/render"
)

// SetLogger configures the logger for viewport and its sub-packages.
// By default no log output is produced. Pass nil to restore the default
// silent behavior.
//
// The logger is propagated to the render package immediately and to a
// viewport's target when the viewport is created, so call SetLogger
// before constructing viewports.
//
// Log levels used:
//   - [slog.LevelDebug]: internal diagnostics (cache hits, classifier reuse)
//   - [slog.LevelInfo]: lifecycle events (target selected)
//   - [slog.LevelWarn]: non-fatal issues (decorator panic, GPU fallback)
func SetLogger(l *slog.Logger) {
	render.SetLogger(l)
}

// Logger returns the current logger shared with the render package.
func Logger() *slog.Logger {
	return render.Logger()
}

// slogger returns the shared logger for internal call sites.
func slogger() *slog.Logger {
	return render.Logger()
}

// loggerSetter is implemented by targets that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the current logger to a target if it supports
// one. Called when a viewport adopts a target.
func propagateLogger(t render.Target) {
	if ls, ok := t.(loggerSetter); ok {
		ls.SetLogger(Logger())
	}
}
