package loadout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/entity"
	"github.com/zeusync/compose/internal/core/factory"
)

func catalog(t *testing.T) *behavior.Catalog {
	t.Helper()
	c := behavior.NewCatalog()
	require.NoError(t, behavior.RegisterBuiltins(c))
	return c
}

func TestDefaultLoadoutsBuild(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	c := catalog(t)

	assert.Equal(t, []string{"animal", "checkout", "claude", "fighter", "roller", "tank", "tesla"}, cfg.Names())
	for _, name := range cfg.Names() {
		e, err := cfg.Build(name, c)
		require.NoError(t, err, name)
		for _, axis := range e.Axes() {
			_, err := e.Perform(axis, behavior.Args{"amount": 10.0})
			require.NoError(t, err, "%s/%s", name, axis)
		}
	}
}

func TestTeslaAndClaude(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	c := catalog(t)

	tesla, err := cfg.Build("tesla", c)
	require.NoError(t, err)
	assert.Equal(t, "robot", tesla.Kind())
	assert.Equal(t, "see, i can walk but i do not have a brain yet", tesla.Describe())

	eff, err := tesla.Perform(behavior.AxisMove, nil)
	require.NoError(t, err)
	assert.Equal(t, "i am walking", eff.Message)

	claude, err := cfg.Build("CLAUDE", c, entity.WithDescription("overridden"))
	require.NoError(t, err)
	eff, err = claude.Perform(behavior.AxisThink, nil)
	require.NoError(t, err)
	assert.Equal(t, "i am thinking using a language model", eff.Message)
	assert.Equal(t, "overridden", claude.Describe())
}

func TestBuildUnknownLoadout(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	_, err = cfg.Build("optimus", catalog(t))
	assert.ErrorIs(t, err, ErrUnknownLoadout)
}

func TestBuildUnknownVariant(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(`
loadouts:
  - name: bird
    behaviors:
      move: fly
`))
	require.NoError(t, err)
	_, err = cfg.Build("bird", catalog(t))
	assert.ErrorIs(t, err, factory.ErrNotFound)
}

func TestBuildRejectsDuplicateAxis(t *testing.T) {
	tmpl := Template{Name: "a", Behaviors: map[string]string{"move": "walk", "Move": "roll"}}
	_, err := tmpl.Build(catalog(t))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuildReleasesPartialBindings(t *testing.T) {
	c := behavior.NewCatalog()
	var lasers []*behavior.Laser
	c.MustRegister(behavior.Key(behavior.AxisAttack, "laser"), func(factory.Params) (behavior.Behavior, error) {
		l := &behavior.Laser{}
		lasers = append(lasers, l)
		return l, nil
	})

	tmpl := Template{Name: "fighter", Behaviors: map[string]string{"attack": "laser", "move": "fly"}}
	e, err := tmpl.Build(c)
	assert.ErrorIs(t, err, factory.ErrNotFound)
	assert.Nil(t, e)
	require.Len(t, lasers, 1)
	assert.True(t, lasers[0].Released())
}

func TestMixedCaseAxisKeys(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader("loadouts:\n  - name: Hopper\n    behaviors: {JUMP: high}\n"))
	require.NoError(t, err)

	e, err := cfg.Build(" hopper ", catalog(t))
	require.NoError(t, err)
	eff, err := e.Perform(behavior.AxisJump, nil)
	require.NoError(t, err)
	assert.Equal(t, "high jump", eff.Message)
}

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(`{"loadouts":[{"name":"shopper","kind":"payment","behaviors":{"pay":"card"}}]}`))
	require.NoError(t, err)

	e, err := cfg.Build("shopper", catalog(t))
	require.NoError(t, err)
	eff, err := e.Perform(behavior.AxisPay, behavior.Args{"amount": 100.0})
	require.NoError(t, err)
	assert.Equal(t, "payment of 100.00 done by card", eff.Message)
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"no loadouts":     `loadouts: []`,
		"missing name":    "loadouts:\n  - behaviors:\n      move: walk\n",
		"no behaviors":    "loadouts:\n  - name: idle\n",
		"empty variant":   "loadouts:\n  - name: idle\n    behaviors:\n      move: \"\"\n",
		"duplicate names": "loadouts:\n  - name: a\n    behaviors: {move: walk}\n  - name: a\n    behaviors: {move: roll}\n",
		"names by case":   "loadouts:\n  - name: Tesla\n    behaviors: {move: walk}\n  - name: tesla\n    behaviors: {move: roll}\n",
		"axes by case":    "loadouts:\n  - name: a\n    behaviors: {move: walk, MOVE: roll}\n",
		"axes by spacing": "loadouts:\n  - name: a\n    behaviors: {move: walk, \" move\": roll}\n",
	}
	for name, doc := range cases {
		_, err := LoadYAML(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}

	_, err := LoadYAML(strings.NewReader("loadouts:\n  - name: a\n    color: red\n    behaviors: {move: walk}\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "loadouts.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"loadouts":[{"name":"j","behaviors":{"jump":"high"}}]}`), 0o600))
	cfg, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"j"}, cfg.Names())

	yamlPath := filepath.Join(dir, "loadouts.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("loadouts:\n  - name: y\n    behaviors: {run: fast}\n"), 0o600))
	cfg, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, cfg.Names())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
