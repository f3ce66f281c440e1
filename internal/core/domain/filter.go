package domain

import "strings"

const (
	// TestFileMarker marks test files, e.g. "index.test.js".
	TestFileMarker = ".test."
	// DocFileMarker marks documentation files, e.g. "readme.md".
	DocFileMarker = ".md"
)

// DefaultYAMLExtensions are tried in order when loading a YAML document by base path.
var DefaultYAMLExtensions = []string{".yaml", ".yml"}

// IsListableFile reports whether a non-directory entry name belongs in a file listing.
// Names containing a test-file or documentation marker anywhere are excluded.
func IsListableFile(name string) bool {
	return !strings.Contains(name, TestFileMarker) && !strings.Contains(name, DocFileMarker)
}
