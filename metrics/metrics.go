package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/status-im/mapzen-core/apikeys"
)

const (
	DefaultNamespace = "mapzen"
	DefaultSubsystem = "apikey"
)

// Ensure KeyMetrics implements apikeys.MetricsRecorder
var _ apikeys.MetricsRecorder = (*KeyMetrics)(nil)

// Config defines configuration for key store metrics
type Config struct {
	Namespace  string // default: "mapzen"
	Subsystem  string // default: "apikey"
	Registerer prometheus.Registerer
}

// KeyMetrics holds the API key store Prometheus metrics
type KeyMetrics struct {
	namespace string
	subsystem string

	Resolutions   *prometheus.CounterVec
	Changes       *prometheus.CounterVec
	Notifications prometheus.Counter
	Listeners     prometheus.Gauge
}

// New creates and registers KeyMetrics. A nil Registerer means the
// default Prometheus registry.
func New(cfg Config) *KeyMetrics {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = DefaultSubsystem
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registerer)

	return &KeyMetrics{
		namespace: cfg.Namespace,
		subsystem: cfg.Subsystem,

		Resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "resolutions_total",
				Help:      "API key resource resolutions by trigger and outcome",
			},
			[]string{"trigger", "outcome"}, // seed|refresh, found|absent|no_resources
		),

		Changes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "changes_total",
				Help:      "API key changes by source",
			},
			[]string{"source"}, // override|refresh
		),

		Notifications: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "notifications_total",
				Help:      "Change notifications delivered to listeners",
			},
		),

		Listeners: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "listeners",
				Help:      "Currently registered change listeners",
			},
		),
	}
}

func (m *KeyMetrics) RecordResolution(trigger, outcome string) {
	m.Resolutions.WithLabelValues(trigger, outcome).Inc()
}

func (m *KeyMetrics) RecordKeyChange(source string) {
	m.Changes.WithLabelValues(source).Inc()
}

func (m *KeyMetrics) RecordNotifications(delivered int) {
	if delivered > 0 {
		m.Notifications.Add(float64(delivered))
	}
}

func (m *KeyMetrics) SetListenerCount(count int) {
	m.Listeners.Set(float64(count))
}
