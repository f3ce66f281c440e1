package access_test

import (
	"testing"

	"github.com/nymag/nymag-fs/internal/engine/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	a := newSiteAccess(t, access.WithTracerProvider(tp))

	assert.True(t, a.FileExists(site("index.js")))
	assert.False(t, a.IsDirectory(site("missing")))

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "fs.fileExists", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("path", site("index.js")))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "fs.isDirectory", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.NotEmpty(t, spans[1].Events(), "the error is recorded on the span")

	// Cache hits do not touch the filesystem.
	a.FileExists(site("index.js"))
	a.IsDirectory(site("missing"))
	assert.Len(t, sr.Ended(), 2)
}
