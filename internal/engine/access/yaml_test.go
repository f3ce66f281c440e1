package access_test

import (
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/nymag/nymag-fs/internal/adapters/module"
	"github.com/nymag/nymag-fs/internal/adapters/yamldoc"
	"github.com/nymag/nymag-fs/internal/core/domain"
	"github.com/nymag/nymag-fs/internal/core/ports/mocks"
	"github.com/nymag/nymag-fs/internal/engine/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetYaml(t *testing.T) {
	a := newSiteAccess(t)

	t.Run("prefers .yaml", func(t *testing.T) {
		doc, err := a.GetYaml(site("config/site"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "site", "port": 8080}, doc)
	})

	t.Run("falls back to .yml", func(t *testing.T) {
		doc, err := a.GetYaml(site("config/legacy"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "legacy"}, doc)
	})

	t.Run("neither file exists", func(t *testing.T) {
		doc, err := a.GetYaml(site("config/missing"))
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := a.GetYaml(site("config/broken"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrYAMLParseFailed.Error())
	})
}

func TestGetYaml_DoesNotReadYmlWhenYamlIsReadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().ReadFile("/cfg/app.yaml").Return([]byte("a: 1"), nil).Times(1)

	a := access.New(fsys, yamldoc.NewParser(), module.NewRegistry(), quietLogger(ctrl))

	for range 2 {
		doc, err := a.GetYaml("/cfg/app")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, doc)
	}
}

func TestGetYaml_ParsesEmptyInputWhenBothMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().ReadFile("/cfg/app.yaml").Return(nil, iofs.ErrNotExist)
	fsys.EXPECT().ReadFile("/cfg/app.yml").Return(nil, iofs.ErrNotExist)

	parser := mocks.NewMockDocumentParser(ctrl)
	parser.EXPECT().Parse(gomock.Len(0)).Return(nil, nil).Times(1)

	a := access.New(fsys, parser, module.NewRegistry(), quietLogger(ctrl))

	doc, err := a.GetYaml("/cfg/app")
	require.NoError(t, err)
	assert.Nil(t, doc)

	// The absent result is cached like any other.
	_, err = a.GetYaml("/cfg/app")
	require.NoError(t, err)
}

func TestGetYaml_ParseErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().ReadFile("/cfg/app.yaml").Return([]byte("::"), nil).Times(1)

	parser := mocks.NewMockDocumentParser(ctrl)
	gomock.InOrder(
		parser.EXPECT().Parse([]byte("::")).Return(nil, errors.New("bad indentation")),
		parser.EXPECT().Parse([]byte("::")).Return("recovered", nil),
	)

	a := access.New(fsys, parser, module.NewRegistry(), quietLogger(ctrl))

	_, err := a.GetYaml("/cfg/app")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrYAMLParseFailed.Error())
	assert.ErrorContains(t, err, "bad indentation")

	doc, err := a.GetYaml("/cfg/app")
	require.NoError(t, err)
	assert.Equal(t, "recovered", doc)
}

func TestGetYaml_CustomExtensions(t *testing.T) {
	a := newSiteAccess(t, access.WithYAMLExtensions(".yml"))

	doc, err := a.GetYaml(site("config/site"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "shadowed"}, doc)
}
