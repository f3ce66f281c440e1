package domain_test

import (
	"testing"
	"time"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSpanSummary_Mean(t *testing.T) {
	tests := []struct {
		name    string
		summary domain.SpanSummary
		want    time.Duration
	}{
		{"empty", domain.SpanSummary{Name: "fs.readFile"}, 0},
		{"single", domain.SpanSummary{Calls: 1, Total: 3 * time.Millisecond}, 3 * time.Millisecond},
		{"several", domain.SpanSummary{Calls: 4, Total: 10 * time.Millisecond}, 2500 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.Mean())
		})
	}
}
