package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/nymag/nymag-fs/internal/app"
	_ "github.com/nymag/nymag-fs/internal/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentsResolve(t *testing.T) {
	c, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, c.App)
	require.NotNil(t, c.Logger)

	assert.False(t, c.App.Access().FileExists("/nonexistent/fsprobe/path"))
}
