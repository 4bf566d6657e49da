package lazyvec

import "sync/atomic"

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many vectors, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordChunkAlloc is called after a chunk is materialized.
	// elements is the chunk size.
	RecordChunkAlloc(elements int)

	// RecordChunkRelease is called after a shrink or Free released chunks.
	RecordChunkRelease(chunks, elements int)

	// RecordResize is called after each effective Resize.
	RecordResize(from, to int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChunkAlloc(int)        {}
func (NoopMetricsCollector) RecordChunkRelease(int, int) {}
func (NoopMetricsCollector) RecordResize(int, int)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChunkAllocs       atomic.Int64
	ChunkReleases     atomic.Int64
	ElementsAllocated atomic.Int64
	ElementsReleased  atomic.Int64
	Grows             atomic.Int64
	Shrinks           atomic.Int64
}

// RecordChunkAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunkAlloc(elements int) {
	b.ChunkAllocs.Add(1)
	b.ElementsAllocated.Add(int64(elements))
}

// RecordChunkRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunkRelease(chunks, elements int) {
	b.ChunkReleases.Add(int64(chunks))
	b.ElementsReleased.Add(int64(elements))
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(from, to int) {
	if to > from {
		b.Grows.Add(1)
	} else {
		b.Shrinks.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocated := b.ElementsAllocated.Load()
	released := b.ElementsReleased.Load()
	return BasicMetricsStats{
		ChunkAllocs:       b.ChunkAllocs.Load(),
		ChunkReleases:     b.ChunkReleases.Load(),
		ElementsAllocated: allocated,
		ElementsReleased:  released,
		ElementsLive:      allocated - released,
		Grows:             b.Grows.Load(),
		Shrinks:           b.Shrinks.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ChunkAllocs       int64
	ChunkReleases     int64
	ElementsAllocated int64
	ElementsReleased  int64
	ElementsLive      int64
	Grows             int64
	Shrinks           int64
}
