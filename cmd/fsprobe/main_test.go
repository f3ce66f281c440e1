package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/nymag/nymag-fs/internal/adapters/fs"
	"github.com/nymag/nymag-fs/internal/adapters/module"
	"github.com/nymag/nymag-fs/internal/adapters/telemetry"
	"github.com/nymag/nymag-fs/internal/adapters/yamldoc"
	"github.com/nymag/nymag-fs/internal/app"
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports/mocks"
	"github.com/nymag/nymag-fs/internal/engine/access"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	fsys := fs.NewMapFSAdapter("/site", fstest.MapFS{
		"index.js": {Data: []byte("index")},
	})
	application := app.New(
		loader,
		access.NewFactory(fsys, yamldoc.NewParser(), log),
		module.NewSelector(module.NewRegistry(), module.NewPluginResolver(fsys)),
		telemetry.NewCollector(),
		log,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
	return provider, loader, log
}

func TestRun_Success(t *testing.T) {
	provider, loader, _ := newProvider(t)
	loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"files", "/site"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "index.js\n", stdout.String())
}

func TestRun_Version(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "fsprobe version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	provider, loader, log := newProvider(t)
	loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigNotFound)
	log.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--config", "missing.yaml", "exists", "/site"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_Verbose(t *testing.T) {
	provider, loader, _ := newProvider(t)
	loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	t.Setenv("NO_COLOR", "1")

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--verbose", "exists", "/site/index.js"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr.String(), "cache ")
	assert.Contains(t, stderr.String(), "fileExists=1")
}
