// Package fs provides FileSystem adapters backed by afero or by an io/fs.FS.
package fs

import (
	iofs "io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/spf13/afero"
)

var (
	_ ports.FileSystem = (*AferoFS)(nil)
	_ ports.FileSystem = (*MapFSAdapter)(nil)
)

// AferoFS implements ports.FileSystem on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new AferoFS over fsys.
func NewAferoFS(fsys afero.Fs) *AferoFS {
	return &AferoFS{fs: fsys}
}

// NewOSFS returns a read-only view of the host filesystem.
func NewOSFS() *AferoFS {
	return NewAferoFS(afero.NewReadOnlyFs(afero.NewOsFs()))
}

// Stat returns file info for the given path.
func (a *AferoFS) Stat(path string) (iofs.FileInfo, error) {
	return a.fs.Stat(path)
}

// ReadFile reads the entire file at path.
func (a *AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// ReadDir lists the entries of the directory at path, sorted by name.
func (a *AferoFS) ReadDir(path string) ([]iofs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	entries := make([]iofs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = iofs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

// MapFSAdapter adapts an fs.FS (typically fstest.MapFS) to ports.FileSystem.
type MapFSAdapter struct {
	FS   iofs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys iofs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(m.FS, m.toRelPath(path))
}

// ReadDir lists the entries of the directory at path, sorted by name.
func (m *MapFSAdapter) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(m.FS, m.toRelPath(path))
}

// toRelPath converts a path into a name valid for m.FS.
// Absolute paths outside the root are returned unchanged, which fs.ValidPath
// rejects, so downstream operations fail with a clear error.
func (m *MapFSAdapter) toRelPath(p string) string {
	p = filepath.ToSlash(p)
	root := filepath.ToSlash(m.Root)

	if !strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}

	// Special case: if root is "/", all absolute paths are within root
	if root != "/" && p != root && !strings.HasPrefix(p, root+"/") {
		return p
	}

	rel := strings.TrimPrefix(p, root)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "."
	}
	return path.Clean(rel)
}
