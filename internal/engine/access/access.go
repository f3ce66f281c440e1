// Package access implements the memoized filesystem and module lookup layer.
//
// Every query is computed at most once per argument for the lifetime of an Access, or
// until its cache is reset. Synchronous queries never fail: filesystem errors collapse
// into false, empty or absent results and are only visible in debug logs and traces.
package access

import (
	"context"
	"errors"
	"path/filepath"
	"slices"

	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/nymag/nymag-fs/internal/memo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation name used for filesystem spans.
const TracerName = "github.com/nymag/nymag-fs/access"

// Op names a memoized operation.
type Op string

// Memoized operations.
const (
	OpFileExists       Op = "fileExists"
	OpReadFile         Op = "readFile"
	OpIsDirectory      Op = "isDirectory"
	OpGetFiles         Op = "getFiles"
	OpGetFolders       Op = "getFolders"
	OpGetYaml          Op = "getYaml"
	OpReadFileAsync    Op = "readFileAsync"
	OpTryResolveModule Op = "tryResolveModule"
)

// Ops lists every memoized operation in a stable order.
var Ops = []Op{
	OpFileExists,
	OpReadFile,
	OpIsDirectory,
	OpGetFiles,
	OpGetFolders,
	OpGetYaml,
	OpReadFileAsync,
	OpTryResolveModule,
}

var _ ports.Access = (*Access)(nil)

// Option configures an Access.
type Option func(*Access)

// WithYAMLExtensions sets the extensions GetYaml tries, in order.
func WithYAMLExtensions(exts ...string) Option {
	return func(a *Access) {
		if len(exts) > 0 {
			a.yamlExts = slices.Clone(exts)
		}
	}
}

// WithTracerProvider makes the Access record spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *Access) {
		a.tracer = tp.Tracer(TracerName)
	}
}

type readResult struct {
	content string
	ok      bool
}

// Access is the memoized filesystem and module lookup layer.
// It is safe for concurrent use.
type Access struct {
	fs       ports.FileSystem
	parser   ports.DocumentParser
	resolver ports.ModuleResolver
	log      ports.Logger
	tracer   trace.Tracer
	yamlExts []string

	fileExists       *memo.Cache[bool]
	readFile         *memo.Cache[readResult]
	isDirectory      *memo.Cache[bool]
	getFiles         *memo.Cache[[]string]
	getFolders       *memo.Cache[[]string]
	getYaml          *memo.Cache[any]
	readFileAsync    *memo.Cache[*domain.Deferred[string]]
	tryResolveModule *memo.Cache[*domain.Module]
}

// New creates an Access with empty caches.
func New(
	fsys ports.FileSystem,
	parser ports.DocumentParser,
	resolver ports.ModuleResolver,
	log ports.Logger,
	opts ...Option,
) *Access {
	a := &Access{
		fs:       fsys,
		parser:   parser,
		resolver: resolver,
		log:      log,
		tracer:   otel.Tracer(TracerName),
		yamlExts: slices.Clone(domain.DefaultYAMLExtensions),

		fileExists:       memo.New[bool](string(OpFileExists)),
		readFile:         memo.New[readResult](string(OpReadFile)),
		isDirectory:      memo.New[bool](string(OpIsDirectory)),
		getFiles:         memo.New[[]string](string(OpGetFiles)),
		getFolders:       memo.New[[]string](string(OpGetFolders)),
		getYaml:          memo.New[any](string(OpGetYaml)),
		readFileAsync:    memo.New[*domain.Deferred[string]](string(OpReadFileAsync)),
		tryResolveModule: memo.New[*domain.Module](string(OpTryResolveModule)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// FileExists reports whether path can be stat'ed.
func (a *Access) FileExists(path string) bool {
	exists, _ := a.fileExists.Do(path, func() (bool, error) {
		return normalize(a, OpFileExists, path, false, func() (bool, error) {
			if _, err := a.fs.Stat(path); err != nil {
				return false, err
			}
			return true, nil
		}), nil
	})
	return exists
}

// ReadFile returns the contents of path. ok is false when the file cannot be read.
func (a *Access) ReadFile(path string) (content string, ok bool) {
	res, _ := a.readFile.Do(path, func() (readResult, error) {
		return normalize(a, OpReadFile, path, readResult{}, func() (readResult, error) {
			data, err := a.fs.ReadFile(path)
			if err != nil {
				return readResult{}, err
			}
			return readResult{content: string(data), ok: true}, nil
		}), nil
	})
	return res.content, res.ok
}

// IsDirectory reports whether path stats as a directory.
func (a *Access) IsDirectory(path string) bool {
	isDir, _ := a.isDirectory.Do(path, func() (bool, error) {
		return normalize(a, OpIsDirectory, path, false, func() (bool, error) {
			info, err := a.fs.Stat(path)
			if err != nil {
				return false, err
			}
			return info.IsDir(), nil
		}), nil
	})
	return isDir
}

// GetFiles lists the non-directory entries of dir, skipping test and documentation files.
func (a *Access) GetFiles(dir string) []string {
	files, _ := a.getFiles.Do(dir, func() ([]string, error) {
		return normalize(a, OpGetFiles, dir, []string{}, func() ([]string, error) {
			return a.list(dir, func(name string, isDir bool) bool {
				return !isDir && domain.IsListableFile(name)
			})
		}), nil
	})
	return slices.Clone(files)
}

// GetFolders lists the directory entries of dir.
func (a *Access) GetFolders(dir string) []string {
	folders, _ := a.getFolders.Do(dir, func() ([]string, error) {
		return normalize(a, OpGetFolders, dir, []string{}, func() ([]string, error) {
			return a.list(dir, func(_ string, isDir bool) bool {
				return isDir
			})
		}), nil
	})
	return slices.Clone(folders)
}

// list reads dir and keeps the entry names accepted by keep.
// Entries are classified through IsDirectory so symlinks follow stat semantics and the
// classification is shared with other callers.
func (a *Access) list(dir string, keep func(name string, isDir bool) bool) ([]string, error) {
	entries, err := a.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if keep(name, a.IsDirectory(filepath.Join(dir, name))) {
			names = append(names, name)
		}
	}
	return names, nil
}

// GetYaml parses the first readable of base+ext for each configured extension.
// When none is readable the parser receives empty input, which decodes to nil.
// Parse failures are returned and not cached.
func (a *Access) GetYaml(base string) (any, error) {
	return a.getYaml.Do(base, func() (any, error) {
		var content string
		for _, ext := range a.yamlExts {
			if c, ok := a.ReadFile(base + ext); ok {
				content = c
				break
			}
		}

		var doc any
		err := a.observe(OpGetYaml, base, func() error {
			var err error
			doc, err = a.parser.Parse([]byte(content))
			return err
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrYAMLParseFailed.Error()), "path", base)
		}
		return doc, nil
	})
}

// ReadFileAsync starts reading path in the background.
// The same Deferred is returned for every call with the same path, whatever its state.
func (a *Access) ReadFileAsync(path string) *domain.Deferred[string] {
	d, _ := a.readFileAsync.Do(path, func() (*domain.Deferred[string], error) {
		d := domain.NewDeferred[string]()
		go func() {
			var data []byte
			err := a.observe(OpReadFileAsync, path, func() error {
				var err error
				data, err = a.fs.ReadFile(path)
				return err
			})
			if err != nil {
				d.Reject(zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", path))
				return
			}
			d.Resolve(string(data))
		}()
		return d, nil
	})
	return d
}

// ReadFiles reads every path concurrently and returns the contents keyed by path.
// The first failed read is returned.
func (a *Access) ReadFiles(ctx context.Context, paths []string) (map[string]string, error) {
	contents := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			content, err := a.ReadFileAsync(p).Await(gctx)
			if err != nil {
				return err
			}
			contents[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(paths))
	for i, p := range paths {
		out[p] = contents[i]
	}
	return out, nil
}

// TryResolveModule resolves and loads the module at path.
// A missing module yields (nil, nil) and is cached; any other failure is returned and
// retried on the next call.
func (a *Access) TryResolveModule(path string) (*domain.Module, error) {
	return a.tryResolveModule.Do(path, func() (*domain.Module, error) {
		var mod *domain.Module
		err := a.observe(OpTryResolveModule, path, func() error {
			location, err := a.resolver.Resolve(path)
			if errors.Is(err, domain.ErrModuleNotFound) {
				a.log.Debug("module not found", "module", path)
				return nil
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrModuleResolveFailed.Error()), "module", path)
			}

			mod, err = a.resolver.Load(location)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailed.Error()), "module", path)
			}
			return nil
		})
		return mod, err
	})
}

// TryResolveEach returns the first module found among paths, trying each at most once.
// It returns (nil, nil) when none resolves and stops at the first real failure.
// paths is not modified.
func (a *Access) TryResolveEach(paths []string) (*domain.Module, error) {
	for i := range paths {
		mod, err := a.TryResolveModule(paths[i])
		if err != nil {
			return nil, err
		}
		if mod != nil {
			return mod, nil
		}
	}
	return nil, nil
}

// Cache returns the cache handle for op.
func (a *Access) Cache(op Op) (memo.Resetter, error) {
	switch op {
	case OpFileExists:
		return a.fileExists, nil
	case OpReadFile:
		return a.readFile, nil
	case OpIsDirectory:
		return a.isDirectory, nil
	case OpGetFiles:
		return a.getFiles, nil
	case OpGetFolders:
		return a.getFolders, nil
	case OpGetYaml:
		return a.getYaml, nil
	case OpReadFileAsync:
		return a.readFileAsync, nil
	case OpTryResolveModule:
		return a.tryResolveModule, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownOperation, "cache handle"), "op", string(op))
	}
}

func (a *Access) caches() []memo.Resetter {
	return []memo.Resetter{
		a.fileExists,
		a.readFile,
		a.isDirectory,
		a.getFiles,
		a.getFolders,
		a.getYaml,
		a.readFileAsync,
		a.tryResolveModule,
	}
}

// Reset drops every memoized result.
func (a *Access) Reset() {
	for _, c := range a.caches() {
		c.Reset()
	}
}

// Stats returns the number of cached entries per operation.
func (a *Access) Stats() map[Op]int {
	stats := make(map[Op]int, len(Ops))
	for _, c := range a.caches() {
		stats[Op(c.Name())] = c.Len()
	}
	return stats
}

// observe runs fn inside a span for op and records its failure.
func (a *Access) observe(op Op, path string, fn func() error) error {
	_, span := a.tracer.Start(context.Background(), "fs."+string(op),
		trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	a.log.Debug("filesystem access", "op", string(op), "path", path)

	err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// normalize runs fn under observe and replaces a failure with fallback.
func normalize[T any](a *Access, op Op, path string, fallback T, fn func() (T, error)) T {
	var v T
	err := a.observe(op, path, func() error {
		var err error
		v, err = fn()
		return err
	})
	if err != nil {
		a.log.Debug("suppressed filesystem error", "op", string(op), "path", path, "error", err)
		return fallback
	}
	return v
}
