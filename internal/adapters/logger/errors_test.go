package logger_test

import (
	"errors"
	"testing"

	"github.com/nymag/nymag-fs/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on one layer",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on a standard error moves to it",
			err:          zerr.With(errors.New("permission denied"), "path", "/etc"),
			wantMessages: []string{"permission denied"},
			wantMetadata: []map[string]any{{"path": "/etc"}},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, e.Message())
				metadata = append(metadata, e.Metadata())
			}

			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries_MultilineMessages(t *testing.T) {
	err := zerr.Wrap(errors.New("line one\nline two"), "outer\ndetail")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: outer\n       detail\n\n  Caused by:\n    → line one\n      line two", got)
}
