package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/pinlat/config"
	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/pin"
	"github.com/katalvlaran/pinlat/xmlexport"
)

// execute runs the CLI with a silent logger and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&app{log: zap.NewNop()})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestValidate_Reference(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "reference: ok (3 materials, 3 pins, 17×17 lattice)\n", out)
}

func TestValidate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := strings.Replace(string(config.ReferenceYAML()), "radial: reflective", "radial: white", 1)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := execute(t, "validate", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDescribe_Reference(t *testing.T) {
	out, err := execute(t, "describe")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "assembly hwr-17x17 (reference)", lines[0])
	assert.Equal(t, "lattice 17×17, pitch 1.26 cm, span 21.42 cm", lines[1])
	assert.Equal(t, strings.TrimSpace(strings.Repeat("F ", 17)), lines[3], "row 0")
	assert.Equal(t, "F F F F F C F F C F F C F F F F F", lines[5], "row 2")
	assert.Equal(t, "F F C F F C F F G F F C F F C F F", lines[11], "row 8")
	assert.Contains(t, out, "  F  fuel         264\n")
	assert.Contains(t, out, "  C  control-rod   24\n")
	assert.Contains(t, out, "  G  guide-tube     1\n")
	assert.Contains(t, out, "bounds x,y [-10.71, 10.71] reflective, z [-100, 100] reflective\n")
}

func TestExport_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "model")
	out, err := execute(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+dir+"\n", out)

	for _, name := range []string{xmlexport.MaterialsFile, xmlexport.GeometryFile, xmlexport.SettingsFile, xmlexport.PlotsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestExport_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PINLAT_OUTPUT_DIR", dir)
	t.Setenv("PINLAT_PARTICLES", "123")

	_, err := execute(t, "export")
	require.NoError(t, err)
	settings, err := os.ReadFile(filepath.Join(dir, xmlexport.SettingsFile))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "<particles>123</particles>")
}

func TestRun_WithStubSolver(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not on PATH")
	}
	t.Setenv("PINLAT_SOLVER", "true")

	dir := t.TempDir()
	_, err := execute(t, "run", "--out", dir, "--threads", "2", "--plot")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, xmlexport.GeometryFile))
	assert.NoError(t, err)
}

func TestLegend_Collisions(t *testing.T) {
	c := material.NewCatalog()
	w, err := c.Define("water", material.Density{Unit: material.GramPerCm3, Value: 1},
		[]material.Nuclide{material.Atom("H1", 2), material.Atom("O16", 1)}, 300)
	require.NoError(t, err)

	arena := csg.NewArena()
	var templates []*pin.Template
	for _, name := range []string{"fuel", "fuel-2", "absorber", "1st"} {
		tpl, err := pin.Make(arena, name, nil, []*material.Substance{w})
		require.NoError(t, err)
		templates = append(templates, tpl)
	}

	got := legend(templates)
	assert.Equal(t, "F", got[templates[0]])
	assert.Equal(t, "A", got[templates[1]])
	assert.Equal(t, "B", got[templates[2]], "A is taken")
	assert.Equal(t, "C", got[templates[3]], "digits fall back to letters")
}
