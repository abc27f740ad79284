package logger

// Logger exposes logging methods for common severity levels. Concrete
// implementations live in infra/logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
