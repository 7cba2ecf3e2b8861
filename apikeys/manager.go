package apikeys

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/status-im/mapzen-core/resources"
)

// Manager holds the Mapzen API key for the process. When created it reads
// the key declared as the "mapzen_api_key" string resource, if any. A key
// set with SetAPIKey overrides the resource value, and a key passed
// explicitly to a component supersedes both (see Resolve).
type Manager struct {
	mu     sync.RWMutex
	apiKey string
	hasKey bool

	listeners listenerList

	resourceName string
	resourceType string
	logger       Logger
	metrics      MetricsRecorder
}

// Option is a functional option for configuring Manager
type Option func(*Manager)

// WithLogger sets the logger for Manager
func WithLogger(logger Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics sets the metrics recorder for Manager
func WithMetrics(metrics MetricsRecorder) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithResource overrides the resource the key is seeded from
func WithResource(name, resType string) Option {
	return func(m *Manager) {
		m.resourceName = name
		m.resourceType = resType
	}
}

var (
	instance   atomic.Pointer[Manager]
	instanceMu sync.Mutex
)

// Instance returns the process-wide Manager, creating it from ctx on the
// first call. Later calls ignore ctx and opts. Concurrent first calls
// construct exactly one Manager.
func Instance(ctx resources.AppContext, opts ...Option) *Manager {
	if m := instance.Load(); m != nil {
		return m
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if m := instance.Load(); m != nil {
		return m
	}

	m := New(ctx, opts...)
	instance.Store(m)
	return m
}

// New creates a standalone Manager seeded from ctx. ctx may be nil.
func New(ctx resources.AppContext, opts ...Option) *Manager {
	m := &Manager{
		resourceName: ResourceName,
		resourceType: ResourceType,
		logger:       NoopLogger{},
		metrics:      NoopMetrics{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if key, ok := m.resolve(ctx, TriggerSeed); ok {
		m.apiKey = key
		m.hasKey = true
	}

	return m
}

// resolve looks the key up in the application-scoped resources of ctx
func (m *Manager) resolve(ctx resources.AppContext, trigger string) (string, bool) {
	if ctx == nil {
		m.metrics.RecordResolution(trigger, ResolutionNoResources)
		return "", false
	}
	if scoped, ok := ctx.(resources.ApplicationScoped); ok {
		if app := scoped.ApplicationContext(); app != nil {
			ctx = app
		}
	}

	res := ctx.Resources()
	if res == nil {
		m.logger.Debug("No resources available, API key left unset")
		m.metrics.RecordResolution(trigger, ResolutionNoResources)
		return "", false
	}

	key, ok := res.Lookup(m.resourceName, m.resourceType, ctx.PackageName())
	if !ok {
		m.logger.Debug("API key resource not declared",
			"name", m.resourceName,
			"package", ctx.PackageName())
		m.metrics.RecordResolution(trigger, ResolutionAbsent)
		return "", false
	}

	m.logger.Debug("API key resolved from resources",
		"package", ctx.PackageName(),
		"fingerprint", Fingerprint(key))
	m.metrics.RecordResolution(trigger, ResolutionFound)
	return key, true
}

// APIKey returns the currently stored key, or "" if none has been
// resolved or set. The value is not validated; see IsValid.
func (m *Manager) APIKey() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.apiKey
}

// LookupAPIKey returns the stored key and whether one was resolved or set
func (m *Manager) LookupAPIKey() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.apiKey, m.hasKey
}

// SetAPIKey overrides any previous key, including one declared in
// resources, and notifies listeners in registration order.
func (m *Manager) SetAPIKey(key string) {
	m.setAPIKey(key, SourceOverride)
}

func (m *Manager) setAPIKey(key, source string) {
	m.mu.Lock()
	m.apiKey = key
	m.hasKey = true
	m.mu.Unlock()

	m.logger.Info("API key changed", "source", source, "fingerprint", Fingerprint(key))
	m.metrics.RecordKeyChange(source)

	m.notifyListeners(key)
}

func (m *Manager) notifyListeners(key string) {
	listeners := m.listeners.snapshot()
	for _, listener := range listeners {
		listener.OnAPIKeyChanged(key)
	}
	m.metrics.RecordNotifications(len(listeners))
}

// AddChangeListener registers listener for key changes. Registering the
// same listener twice delivers each change twice.
func (m *Manager) AddChangeListener(listener ChangeListener) {
	if listener == nil {
		return
	}
	if !removable(listener) {
		m.logger.Warn("Change listener type is not comparable and cannot be removed",
			"type", fmt.Sprintf("%T", listener))
	}
	m.metrics.SetListenerCount(m.listeners.add(listener))
}

// RemoveChangeListener removes one registration of listener. Removing a
// listener that was never added, or one whose type is not comparable, is
// a no-op.
func (m *Manager) RemoveChangeListener(listener ChangeListener) {
	if listener == nil {
		return
	}
	if n, removed := m.listeners.remove(listener); removed {
		m.metrics.SetListenerCount(n)
	}
}

// OnChange registers fn as a listener and returns a func that removes it
func (m *Manager) OnChange(fn func(newKey string)) (cancel func()) {
	l := &funcListener{fn: fn}
	m.AddChangeListener(l)

	var once sync.Once
	return func() {
		once.Do(func() { m.RemoveChangeListener(l) })
	}
}

// ListenerCount returns the number of registered listeners
func (m *Manager) ListenerCount() int {
	return m.listeners.len()
}
