package logx

import "log/slog"

// SlogAdapter backs the Logger interface with a *slog.Logger, which is how
// the service binaries emit structured JSON lines.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps l in the Logger interface.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &SlogAdapter{l: l}
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, slogArgs(fields)...) }
func (s *SlogAdapter) Info(msg string, fields ...Field)  { s.l.Info(msg, slogArgs(fields)...) }
func (s *SlogAdapter) Warn(msg string, fields ...Field)  { s.l.Warn(msg, slogArgs(fields)...) }
func (s *SlogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, slogArgs(fields)...) }

// With attaches the fields to every entry of the returned logger.
func (s *SlogAdapter) With(fields ...Field) Logger {
	return &SlogAdapter{l: s.l.With(slogArgs(fields)...)}
}

// Sync is a no-op; slog handlers write through.
func (s *SlogAdapter) Sync() error { return nil }

func slogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
