package lazyvec

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	acquirer         MemoryAcquirer
	init             any // func(*T), checked in New
}

// MemoryAcquirer reserves and returns bytes for materialized chunks.
// *resource.Controller implements it.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Option configures a Vector.
type Option func(*options)

// WithLogger sets the structured logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are disabled.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryBudget charges every materialized chunk against acquirer.
// A chunk costs ChunkSize * sizeof(T) bytes and is returned on release.
// If acquirer refuses, the accessing call panics with *AllocationError.
func WithMemoryBudget(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithInit sets the default-value constructor for element type T.
// It runs on every element of a freshly materialized chunk and defines the
// value Peek reports for unallocated indices.
//
// Example:
//
//	v, _ := lazyvec.New[Entry](1024, lazyvec.WithInit(func(e *Entry) {
//	    e.Parent = -1
//	}))
func WithInit[T any](fn func(*T)) Option {
	return func(o *options) {
		if fn == nil {
			o.init = nil
			return
		}
		o.init = fn
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}
