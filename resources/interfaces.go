package resources

//go:generate mockgen -package=mock -source=interfaces.go -destination=mock/resources.go

// Resources resolves named, typed values scoped to an application package.
// A miss is reported through the bool, never as an error.
type Resources interface {
	Lookup(name, resType, pkg string) (string, bool)
}

// AppContext is the host-supplied handle used to seed values at startup.
// Resources may return nil when the host has no resource bundle.
type AppContext interface {
	Resources() Resources
	PackageName() string
}

// ApplicationScoped is implemented by contexts that can hand out their
// process-wide application context. Callers should prefer it so a
// short-lived context is never retained.
type ApplicationScoped interface {
	ApplicationContext() AppContext
}

// Logger defines the interface for logging operations
// This allows users to plug in their own logger (zap, logrus, etc.)
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// NoopLogger is a no-operation logger that discards all log messages
type NoopLogger struct{}

func (NoopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NoopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NoopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (NoopLogger) Error(msg string, keysAndValues ...interface{}) {}
