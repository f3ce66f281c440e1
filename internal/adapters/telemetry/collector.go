// Package telemetry aggregates the spans recorded by the access layer.
package telemetry

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Collector implements sdktrace.SpanProcessor by summarizing finished spans per name.
type Collector struct {
	mu       sync.Mutex
	spans    map[string]*domain.SpanSummary
	provider *sdktrace.TracerProvider
}

// NewCollector creates a Collector with its own tracer provider.
func NewCollector() *Collector {
	c := &Collector{spans: make(map[string]*domain.SpanSummary)}
	c.provider = sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(c),
	)
	return c
}

// Provider returns the tracer provider whose spans feed the Collector.
func (c *Collector) Provider() trace.TracerProvider {
	return c.provider
}

// OnStart is called when a span starts.
func (c *Collector) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records a finished span.
func (c *Collector) OnEnd(s sdktrace.ReadOnlySpan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sum, ok := c.spans[s.Name()]
	if !ok {
		sum = &domain.SpanSummary{Name: s.Name()}
		c.spans[s.Name()] = sum
	}
	sum.Calls++
	sum.Total += s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		sum.Errors++
	}
}

// Shutdown is called when the SDK shuts down.
func (c *Collector) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (c *Collector) ForceFlush(_ context.Context) error {
	return nil
}

// Summaries returns the recorded spans sorted by name.
func (c *Collector) Summaries() []domain.SpanSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.SpanSummary, 0, len(c.spans))
	for _, name := range slices.Sorted(maps.Keys(c.spans)) {
		out = append(out, *c.spans[name])
	}
	return out
}

// Reset forgets every recorded span.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.spans)
}
