package logging

import "context"

// Fanout duplicates every record to all wrapped loggers. Used to tee the
// colored console handler and the plain-text session log file.
type Fanout struct {
	loggers []Logger
}

func NewFanout(loggers ...Logger) *Fanout {
	return &Fanout{loggers: loggers}
}

func (f *Fanout) Debug(ctx context.Context, msg string, args ...any) {
	for _, l := range f.loggers {
		l.Debug(ctx, msg, args...)
	}
}

func (f *Fanout) Info(ctx context.Context, msg string, args ...any) {
	for _, l := range f.loggers {
		l.Info(ctx, msg, args...)
	}
}

func (f *Fanout) Warn(ctx context.Context, msg string, args ...any) {
	for _, l := range f.loggers {
		l.Warn(ctx, msg, args...)
	}
}

func (f *Fanout) Error(ctx context.Context, msg string, args ...any) {
	for _, l := range f.loggers {
		l.Error(ctx, msg, args...)
	}
}

func (f *Fanout) With(args ...any) Logger {
	children := make([]Logger, len(f.loggers))
	for i, l := range f.loggers {
		children[i] = l.With(args...)
	}
	return &Fanout{loggers: children}
}

// Nop discards everything. Handy default for tests.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
