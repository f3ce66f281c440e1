package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// chainError is implemented by go.trai.ch/zerr errors.
type chainError interface {
	Message() string
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks err's chain, one entry per message.
// Metadata attached to a layer without its own message moves to the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		z, ok := current.(chainError)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		meta := z.Metadata()
		if len(pending) > 0 {
			maps.Copy(meta, pending)
			pending = nil
		}

		if z.Message() == "" {
			pending = meta
			continue
		}
		entries = append(entries, errorEntry{message: z.Message(), metadata: meta})
	}

	return entries
}

// formatErrorEntries renders entries as an error headline followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		head := msgLines[0] + formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+head)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+head)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	parts := make([]string, 0, len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, meta[key]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
