// Package logging is a minimal structured-logging facade used by the search
// core and the top-level Plan. It exists so call sites never import golog
// directly, the same way the sibling motion-planning codebase threads a
// logger through constructors rather than reaching for a package-global.
package logging

import (
	"testing"

	"github.com/edaniels/golog"
)

// Logger is the structured logger interface consumed throughout this module.
// It is satisfied by golog.Logger.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(args ...interface{}) Logger
}

type logger struct {
	golog.Logger
}

func wrap(l golog.Logger) Logger {
	return &logger{l}
}

func (l *logger) With(args ...interface{}) Logger {
	return wrap(l.Logger.With(args...))
}

// NewLogger constructs a named production logger.
func NewLogger(name string) Logger {
	return wrap(golog.NewLogger(name))
}

// NewTestLogger constructs a logger that writes to the test's own output,
// scoped to the lifetime of t, mirroring golog.NewTestLogger(t) usage
// throughout this codebase's _test.go files.
func NewTestLogger(t testing.TB) Logger {
	return wrap(golog.NewTestLogger(t))
}

// NewBlankLogger constructs a logger that discards everything, for callers
// such as tests that want no log output.
func NewBlankLogger() Logger {
	return wrap(golog.NewBlankLogger())
}
