// Package ports defines the core interfaces for the application.
package ports

import "io/fs"

// FileSystem is the read-only view of storage the access layer queries.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// ReadDir lists the immediate entries of the directory at path, sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)
}
