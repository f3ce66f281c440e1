package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nymag/nymag-fs/cmd/fsprobe/commands"
	"github.com/nymag/nymag-fs/internal/app"
	"github.com/nymag/nymag-fs/internal/build"
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports"
	"github.com/nymag/nymag-fs/internal/core/ports/mocks"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	access       ports.Access
	configured   []app.Options
	configureErr error
	stats        map[string]int
	spans        []domain.SpanSummary
}

func (m *mockApp) Configure(opts app.Options) error {
	m.configured = append(m.configured, opts)
	return m.configureErr
}

func (m *mockApp) Access() ports.Access {
	return m.access
}

func (m *mockApp) Stats() map[string]int {
	return m.stats
}

func (m *mockApp) Spans() []domain.SpanSummary {
	return m.spans
}

func execute(t *testing.T, a *mockApp, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func newMockApp(t *testing.T) (*mockApp, *mocks.MockAccess) {
	t.Helper()
	acc := mocks.NewMockAccess(gomock.NewController(t))
	return &mockApp{access: acc}, acc
}

func TestCommands_GlobalFlags(t *testing.T) {
	a, acc := newMockApp(t)
	a.stats = map[string]int{"isDirectory": 2, "fileExists": 1}
	acc.EXPECT().FileExists("/a").Return(true).Times(2)

	_, stderr, err := execute(t, a, "exists", "/a")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, a, "exists", "/a", "--config", "probe.yaml", "--json", "--verbose")
	require.NoError(t, err)

	require.Len(t, a.configured, 2)
	assert.Equal(t, app.Options{}, a.configured[0])
	assert.Equal(t, app.Options{ConfigPath: "probe.yaml", JSON: true, Verbose: true}, a.configured[1])
	assert.Equal(t, "cache fileExists=1 isDirectory=2\n", stderr)
}

func TestCommands_VersionShorthand(t *testing.T) {
	a, _ := newMockApp(t)

	out, _, err := execute(t, a, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "fsprobe version "+build.Version)
	assert.Empty(t, a.configured)
}

func TestCommands_Trace(t *testing.T) {
	a, acc := newMockApp(t)
	a.spans = []domain.SpanSummary{
		{Name: "fs.fileExists", Calls: 2, Errors: 1, Total: 4 * time.Millisecond},
	}
	acc.EXPECT().FileExists("/a").Return(false)

	_, stderr, err := execute(t, a, "exists", "/a", "--trace")
	require.NoError(t, err)

	assert.Equal(t, app.Options{Trace: true}, a.configured[0])
	assert.Equal(t, "trace fs.fileExists calls=2 errors=1 mean=2ms\n", stderr)
}

func TestCommands_ConfigureError(t *testing.T) {
	a, _ := newMockApp(t)
	a.configureErr = errors.New("bad config")

	_, _, err := execute(t, a, "exists", "/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad config")
}

func TestCommands_Exists(t *testing.T) {
	a, acc := newMockApp(t)
	acc.EXPECT().FileExists("/present").Return(true)
	acc.EXPECT().FileExists("/absent").Return(false)

	out, _, err := execute(t, a, "exists", "/present")
	require.NoError(t, err)
	assert.Equal(t, "✓ true\n", out)

	out, _, err = execute(t, a, "exists", "/absent")
	require.NoError(t, err)
	assert.Equal(t, "✗ false\n", out)
}

func TestCommands_IsDir(t *testing.T) {
	a, acc := newMockApp(t)
	acc.EXPECT().IsDirectory("/dir").Return(true)

	out, _, err := execute(t, a, "isdir", "/dir")
	require.NoError(t, err)
	assert.Equal(t, "✓ true\n", out)
}

func TestCommands_Read(t *testing.T) {
	a, acc := newMockApp(t)
	acc.EXPECT().ReadFile("/a.txt").Return("contents\n", true)
	acc.EXPECT().ReadFile("/gone").Return("", false)

	out, _, err := execute(t, a, "read", "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "contents\n", out)

	_, _, err = execute(t, a, "read", "/gone")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReadFailed.Error())
}

func TestCommands_Listings(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expect     func(acc *mocks.MockAccess)
		goldenName string
	}{
		{
			name: "files",
			args: []string{"files", "/site"},
			expect: func(acc *mocks.MockAccess) {
				acc.EXPECT().GetFiles("/site").Return([]string{"index.js", "service.yaml"})
			},
			goldenName: "files",
		},
		{
			name: "folders",
			args: []string{"folders", "/site"},
			expect: func(acc *mocks.MockAccess) {
				acc.EXPECT().GetFolders("/site").Return([]string{"components", "layouts"})
			},
			goldenName: "folders",
		},
		{
			name: "empty listing",
			args: []string{"files", "/missing"},
			expect: func(acc *mocks.MockAccess) {
				acc.EXPECT().GetFiles("/missing").Return([]string{})
			},
			goldenName: "files_empty",
		},
		{
			name: "files matching a glob",
			args: []string{"files", "/site", "--match", "*.{js,ts}"},
			expect: func(acc *mocks.MockAccess) {
				acc.EXPECT().GetFiles("/site").Return([]string{"index.js", "service.yaml", "types.ts"})
			},
			goldenName: "files_match",
		},
		{
			name: "folders matching a glob",
			args: []string{"folders", "/site", "-m", "comp*"},
			expect: func(acc *mocks.MockAccess) {
				acc.EXPECT().GetFolders("/site").Return([]string{"components", "layouts"})
			},
			goldenName: "folders_match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, acc := newMockApp(t)
			tt.expect(acc)

			out, _, err := execute(t, a, tt.args...)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(out))
		})
	}
}

func TestCommands_InvalidPattern(t *testing.T) {
	a, acc := newMockApp(t)
	acc.EXPECT().GetFiles("/site").Return([]string{"index.js"})

	out, _, err := execute(t, a, "files", "/site", "--match", "[js")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
	assert.Empty(t, out)
}

func TestCommands_Yaml(t *testing.T) {
	a, acc := newMockApp(t)
	acc.EXPECT().GetYaml("/site/config").Return(map[string]any{"name": "site", "port": 8080}, nil)
	acc.EXPECT().GetYaml("/site/missing").Return(nil, nil)
	acc.EXPECT().GetYaml("/site/broken").Return(nil, domain.ErrYAMLParseFailed)

	out, _, err := execute(t, a, "yaml", "/site/config")
	require.NoError(t, err)
	assert.Equal(t, "name: site\nport: 8080\n", out)

	out, _, err = execute(t, a, "yaml", "/site/missing")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, _, err = execute(t, a, "yaml", "/site/broken")
	require.ErrorIs(t, err, domain.ErrYAMLParseFailed)
}

func TestCommands_ReadAsync(t *testing.T) {
	t.Run("several files", func(t *testing.T) {
		a, acc := newMockApp(t)
		acc.EXPECT().ReadFiles(gomock.Any(), []string{"/a", "/b"}).Return(map[string]string{
			"/a": "alpha\n",
			"/b": "beta\n",
		}, nil)

		out, _, err := execute(t, a, "read-async", "/a", "/b")
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "read_async", []byte(out))
	})

	t.Run("single file", func(t *testing.T) {
		a, acc := newMockApp(t)
		acc.EXPECT().ReadFiles(gomock.Any(), []string{"/a"}).Return(map[string]string{"/a": "alpha\n"}, nil)

		out, _, err := execute(t, a, "read-async", "/a")
		require.NoError(t, err)
		assert.Equal(t, "alpha\n", out)
	})

	t.Run("no paths", func(t *testing.T) {
		a, _ := newMockApp(t)

		_, _, err := execute(t, a, "read-async")
		require.ErrorIs(t, err, domain.ErrNoPathsSpecified)
	})

	t.Run("failed read", func(t *testing.T) {
		a, acc := newMockApp(t)
		acc.EXPECT().ReadFiles(gomock.Any(), []string{"/gone"}).Return(nil, domain.ErrReadFailed)

		_, _, err := execute(t, a, "read-async", "/gone")
		require.ErrorIs(t, err, domain.ErrReadFailed)
	})
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		a, acc := newMockApp(t)
		acc.EXPECT().TryResolveEach([]string{"nav", "components/nav"}).
			Return(&domain.Module{Name: "nav", Location: "components/nav", Value: "nav module"}, nil)

		out, _, err := execute(t, a, "resolve", "nav", "components/nav")
		require.NoError(t, err)
		assert.Equal(t, "✓ nav → components/nav\nnav module\n", out)
	})

	t.Run("none found", func(t *testing.T) {
		a, acc := newMockApp(t)
		acc.EXPECT().TryResolveEach([]string{"nav"}).Return(nil, nil)

		_, _, err := execute(t, a, "resolve", "nav")
		require.ErrorIs(t, err, domain.ErrModuleNotFound)
	})

	t.Run("no paths", func(t *testing.T) {
		a, _ := newMockApp(t)

		_, _, err := execute(t, a, "resolve")
		require.ErrorIs(t, err, domain.ErrNoPathsSpecified)
	})
}

func TestCommands_Version(t *testing.T) {
	a, _ := newMockApp(t)

	out, _, err := execute(t, a, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.Empty(t, a.configured, "version does not load configuration")
}
