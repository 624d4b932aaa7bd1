package shapectl

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"honnef.co/go/polygen"
)

const yamlConfig = `
vertices_count: 6
sizes: [10.0, 20.0]
ring_ratio: 0.5
corner_size: 2.0
corner_detail: 4
arc_angle: 180.0
closing_method: arc
offset:
  position: [1.0, 2.0]
  rotation: 45.0
inserts:
  - start: 1
    vertices_count: 3
    sizes: [1.0]
export:
  behavior: editor|runtime
  as_hulls: true
  targets: [walls/left, walls/right]
`

const tomlConfig = `
vertices_count = 6
sizes = [10.0, 20.0]
ring_ratio = 0.5
corner_size = 2.0
corner_detail = 4
arc_angle = 180.0
closing_method = "arc"

[offset]
position = [1.0, 2.0]
rotation = 45.0

[[inserts]]
start = 1
vertices_count = 3
sizes = [1.0]

[export]
behavior = "editor|runtime"
as_hulls = true
targets = ["walls/left", "walls/right"]
`

func TestDecodeConfig(t *testing.T) {
	y, err := DecodeConfig([]byte(yamlConfig), "yaml")
	require.NoError(t, err)
	tm, err := DecodeConfig([]byte(tomlConfig), ".toml")
	require.NoError(t, err)
	assert.Equal(t, y, tm)

	assert.Equal(t, 6, y.VerticesCount)
	assert.Equal(t, []float64{10, 20}, y.Sizes)
	assert.Equal(t, polygen.Arc, y.ClosingMethod)
	assert.Equal(t, ExportEditor|ExportRuntime, y.Export.Behavior)
	// Missing keys keep their defaults.
	assert.Equal(t, [2]float64{1, 1}, y.Offset.Scale)
	assert.Equal(t, -1, y.CornerLength)
	assert.True(t, y.LimitEndingSlopes)
	require.NoError(t, y.Validate())
}

func TestDecodeConfigEmpty(t *testing.T) {
	for _, format := range []string{"yaml", "yml", "toml"} {
		cfg, err := DecodeConfig(nil, format)
		require.NoError(t, err, format)
		assert.Equal(t, DefaultConfig(), cfg, format)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"unknown yaml key", "bogus: 1\n", "yaml"},
		{"unknown toml key", "bogus = 1\n", "toml"},
		{"bad closing method", "closing_method: round\n", "yaml"},
		{"bad behavior", "[export]\nbehavior = \"always\"\n", "toml"},
		{"unsupported format", "{}", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.VerticesCount)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("vertices_count = \"six\"\n"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.VerticesCount = 0
	cfg.Sizes = nil
	cfg.RingRatio = 2
	cfg.CornerSize = -1
	cfg.ArcStart = math.Inf(1)
	cfg.Export.Targets = []string{""}
	cfg.Inserts = []InsertConfig{{VerticesCount: 3}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, polygen.ErrInvalidParameter)
	for _, key := range []string{
		"vertices_count",
		"sizes",
		"ring_ratio",
		"corner_size",
		"arc_start",
		"export.targets[0]",
		"inserts[0].sizes",
	} {
		assert.True(t, strings.Contains(err.Error(), key), key)
	}
}

func TestConfigParams(t *testing.T) {
	cfg, err := DecodeConfig([]byte(yamlConfig), "yaml")
	require.NoError(t, err)
	p := cfg.Params()

	assert.Equal(t, 6, p.VerticesCount)
	assert.Equal(t, 0.5, p.RingRatio)
	assert.InDelta(t, math.Pi, p.ArcAngle, 1e-12)
	assert.InDelta(t, math.Pi/4, p.OffsetRotation, 1e-12)
	assert.Equal(t, polygen.Vec(1, 2), p.OffsetPosition)
	assert.Equal(t, polygen.Vec(1, 1), p.OffsetScale)
	assert.Equal(t, polygen.CornerRange{Start: 0, Length: -1, LimitEndingSlopes: true}, p.CornerRange)

	require.Len(t, p.Inserts, 1)
	ins := p.Inserts[0]
	assert.Equal(t, 1, ins.Start)
	// A zero angle is a full circle, a zero scale no scaling.
	assert.True(t, polygen.IsFullCircle(ins.Generator.ArcStart, ins.Generator.ArcEnd))
	assert.Equal(t, polygen.Identity, ins.Generator.Offset)

	_, _, err = p.Build()
	require.NoError(t, err)
}

const matrixConfig = `
vertices_count: 4
sizes: [10]
inserts:
  - start: 1
    vertices_count: 3
    sizes: [1]
    position: [5, 5]
  - start: 1
    vertices_count: 3
    sizes: [1]
    position: [7, 7]
    matrix: [1, 0, 5, 0, 1, 5]
`

func TestConfigInsertMatrix(t *testing.T) {
	cfg, err := DecodeConfig([]byte(matrixConfig), "yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	p := cfg.Params()
	require.Len(t, p.Inserts, 2)
	assert.Equal(t, polygen.Translate(polygen.Vec(5, 5)), p.Inserts[1].Generator.Offset)

	byPosition, err := p.Inserts[0].Generator.Shape()
	require.NoError(t, err)
	byMatrix, err := p.Inserts[1].Generator.Shape()
	require.NoError(t, err)
	assert.True(t, byPosition.ApproxEqual(byMatrix, 1e-12))

	cfg.Inserts[1].Matrix = &f64.Aff3{1, 0, math.NaN(), 0, 1, 0}
	err = cfg.Validate()
	assert.ErrorIs(t, err, polygen.ErrInvalidParameter)
	assert.ErrorContains(t, err, "inserts[1].matrix")
}

func TestDefaultConfigMatchesDefaultParams(t *testing.T) {
	p := DefaultConfig().Params()
	want := DefaultParams()
	assert.Equal(t, want.VerticesCount, p.VerticesCount)
	assert.Equal(t, want.Sizes, p.Sizes)
	assert.Equal(t, want.RingRatio, p.RingRatio)
	assert.Equal(t, want.CornerRange, p.CornerRange)
	assert.Equal(t, want.ClosingMethod, p.ClosingMethod)
	assert.Equal(t, want.OffsetScale, p.OffsetScale)
	assert.InDelta(t, want.ArcAngle, p.ArcAngle, 1e-12)
}
