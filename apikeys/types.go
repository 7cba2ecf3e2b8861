package apikeys

import (
	"github.com/status-im/mapzen-core/resources"
)

const (
	// ResourceName is the string resource the key is seeded from
	ResourceName = "mapzen_api_key"
	// ResourceType is the resource type ResourceName is declared as
	ResourceType = "string"
	// ParamName is the query parameter requests carry the key in
	ParamName = "api_key"
	// DefaultAPIKey is the placeholder shipped in sample resource files
	DefaultAPIKey = "[YOUR_MAPZEN_API_KEY]"
)

// ChangeListener is notified synchronously, on the goroutine calling
// SetAPIKey, whenever the stored key changes. Only listeners of a
// comparable type can be removed again; pointer receivers are the norm.
type ChangeListener interface {
	OnAPIKeyChanged(newKey string)
}

// Logger is shared with the resource providers
type Logger = resources.Logger

// NoopLogger is a no-operation logger that discards all log messages
type NoopLogger = resources.NoopLogger

// MetricsRecorder defines the interface for recording key store metrics
// Users can implement this to integrate with their metrics system (Prometheus, etc.)
type MetricsRecorder interface {
	RecordResolution(trigger, outcome string)
	RecordKeyChange(source string)
	RecordNotifications(delivered int)
	SetListenerCount(count int)
}

// NoopMetrics is a no-operation metrics recorder that discards all metrics
type NoopMetrics struct{}

func (NoopMetrics) RecordResolution(trigger, outcome string) {}
func (NoopMetrics) RecordKeyChange(source string)            {}
func (NoopMetrics) RecordNotifications(delivered int)        {}
func (NoopMetrics) SetListenerCount(count int)               {}

// Resolution triggers reported to MetricsRecorder. Seed is the lookup made
// when a Manager is created; refresh covers every Refresher poll.
const (
	TriggerSeed    = "seed"
	TriggerRefresh = "refresh"
)

// Resolution outcomes reported to MetricsRecorder
const (
	ResolutionFound       = "found"
	ResolutionAbsent      = "absent"
	ResolutionNoResources = "no_resources"
)

// Key change sources reported to MetricsRecorder
const (
	SourceOverride = "override"
	SourceRefresh  = "refresh"
)
