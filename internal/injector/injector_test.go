package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/compose/internal/app"
)

func TestInitializeApp(t *testing.T) {
	a, cleanup, err := InitializeApp(app.Config{LogLevel: "error"})
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Events)
	assert.True(t, a.Behaviors.Has("move/walk"))
	assert.True(t, a.Products.Vehicles.Has("car"))
	assert.Contains(t, a.Loadouts.Names(), "tesla")
}

func TestInitializeAppBuildsSeparateInstances(t *testing.T) {
	a, cleanupA, err := InitializeApp(app.Config{})
	require.NoError(t, err)
	defer cleanupA()
	b, cleanupB, err := InitializeApp(app.Config{})
	require.NoError(t, err)
	defer cleanupB()

	assert.NotSame(t, a.Registry, b.Registry)
	assert.NotSame(t, a.Behaviors, b.Behaviors)
}

func TestInitializeAppBadLevel(t *testing.T) {
	_, _, err := InitializeApp(app.Config{LogLevel: "shout"})
	assert.Error(t, err)
}
