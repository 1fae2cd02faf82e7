package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestList(t *testing.T) {
	out, _, code := execute(t, "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "walk")
	assert.Contains(t, out, "laser")
	assert.Contains(t, out, "vehicles: bike, car, truck")
	assert.Contains(t, out, "shapes:   circle, rectangle, triangle")
	assert.Contains(t, out, "tesla")
}

func TestCreate(t *testing.T) {
	out, _, code := execute(t, "create", "vehicle", "CAR")
	require.Equal(t, 0, code)
	assert.Equal(t, "created car (4 wheels): driving a car on the road\n", out)

	out, _, code = execute(t, "create", "shape", "rectangle", "-p", "width=2", "--param", "height=3")
	require.Equal(t, 0, code)
	assert.Equal(t, "created rectangle: area 6.00\n", out)
}

func TestCreateNotFound(t *testing.T) {
	out, errOut, code := execute(t, "create", "vehicle", "plane")
	assert.Equal(t, 1, code)
	assert.Equal(t, "plane: not found\n", out)
	assert.Contains(t, errOut, "product not found")
}

func TestCreateBadParam(t *testing.T) {
	_, errOut, code := execute(t, "create", "shape", "circle", "-p", "radius")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "want key=value")
}

func TestPerform(t *testing.T) {
	out, _, code := execute(t, "perform", "tesla", "move")
	require.Equal(t, 0, code)
	assert.Equal(t, "tesla [move/walk] i am walking\n", out)

	out, _, code = execute(t, "perform", "checkout", "pay", "--amount", "12.5", "--with", "card")
	require.Equal(t, 0, code)
	assert.Equal(t, "checkout [pay/card] payment of 12.50 done by card\n", out)
}

func TestPerformAxisIgnoresCase(t *testing.T) {
	out, _, code := execute(t, "perform", "TESLA", " Move ")
	require.Equal(t, 0, code)
	assert.Equal(t, "tesla [move/walk] i am walking\n", out)
}

func TestPerformUnboundAxis(t *testing.T) {
	_, _, code := execute(t, "perform", "roller", "think")
	assert.Equal(t, 1, code)
}

func TestStress(t *testing.T) {
	out, _, code := execute(t, "stress", "--workers", "4", "--rounds", "20")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "workers=4 rounds=20 performed=60 rebinds=20")
}

func TestDemo(t *testing.T) {
	out, _, code := execute(t, "demo")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "plane: not found")
}

func TestCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadouts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`loadouts:
  - name: hopper
    behaviors:
      jump: high
`), 0o600))

	out, _, code := execute(t, "--config", path, "perform", "hopper", "jump")
	require.Equal(t, 0, code)
	assert.Equal(t, "hopper [jump/high] high jump\n", out)

	_, _, code = execute(t, "--log-level", "loud", "list")
	assert.Equal(t, 1, code)
}
