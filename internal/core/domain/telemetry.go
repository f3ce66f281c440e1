package domain

import "time"

// SpanSummary aggregates the finished spans that share a name.
type SpanSummary struct {
	Name   string
	Calls  int
	Errors int
	Total  time.Duration
}

// Mean returns the average span duration, or zero when nothing was recorded.
func (s SpanSummary) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}
