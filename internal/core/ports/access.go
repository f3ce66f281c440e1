package ports

import (
	"context"

	"github.com/nymag/nymag-fs/internal/core/domain"
)

// Access is the memoized filesystem and module lookup layer.
// Synchronous queries never fail: errors collapse into false, empty or absent results.
//
//go:generate mockgen -source=access.go -destination=mocks/mock_access.go -package=mocks
type Access interface {
	FileExists(path string) bool
	ReadFile(path string) (string, bool)
	IsDirectory(path string) bool
	GetFiles(dir string) []string
	GetFolders(dir string) []string
	GetYaml(base string) (any, error)
	ReadFileAsync(path string) *domain.Deferred[string]
	ReadFiles(ctx context.Context, paths []string) (map[string]string, error)
	TryResolveModule(path string) (*domain.Module, error)
	TryResolveEach(paths []string) (*domain.Module, error)
}
