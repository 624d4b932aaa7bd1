package shapectl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"honnef.co/go/polygen"
)

// Config is the file representation of a controller's parameters and export
// settings. Angles are in degrees.
type Config struct {
	VerticesCount int       `yaml:"vertices_count" toml:"vertices_count"`
	Sizes         []float64 `yaml:"sizes,flow" toml:"sizes"`
	RingRatio     float64   `yaml:"ring_ratio" toml:"ring_ratio"`

	CornerSize        float64 `yaml:"corner_size" toml:"corner_size"`
	CornerDetail      int     `yaml:"corner_detail" toml:"corner_detail"`
	CornerStart       int     `yaml:"corner_start" toml:"corner_start"`
	CornerLength      int     `yaml:"corner_length" toml:"corner_length"`
	LimitEndingSlopes bool    `yaml:"limit_ending_slopes" toml:"limit_ending_slopes"`

	ArcStart      float64               `yaml:"arc_start" toml:"arc_start"`
	ArcAngle      float64               `yaml:"arc_angle" toml:"arc_angle"`
	ClosingMethod polygen.ClosingMethod `yaml:"closing_method" toml:"closing_method"`
	RoundArcEnds  bool                  `yaml:"round_arc_ends" toml:"round_arc_ends"`

	Offset  OffsetConfig   `yaml:"offset" toml:"offset"`
	Inserts []InsertConfig `yaml:"inserts,omitempty" toml:"inserts,omitempty"`
	Export  ExportConfig   `yaml:"export" toml:"export"`
}

type OffsetConfig struct {
	Position [2]float64 `yaml:"position,flow" toml:"position"`
	Rotation float64    `yaml:"rotation" toml:"rotation"`
	Scale    [2]float64 `yaml:"scale,flow" toml:"scale"`
	Skew     float64    `yaml:"skew" toml:"skew"`
}

// InsertConfig describes a shape spliced into the generated shape. A zero
// Scale means no scaling, and a zero ArcAngle a full circle.
//
// Matrix, if set, is the row-major affine transform of the insert and
// replaces Position, Rotation and Scale.
type InsertConfig struct {
	Start           int        `yaml:"start" toml:"start"`
	VerticesCount   int        `yaml:"vertices_count" toml:"vertices_count"`
	Sizes           []float64  `yaml:"sizes,flow" toml:"sizes"`
	Position        [2]float64 `yaml:"position,flow" toml:"position"`
	Rotation        float64    `yaml:"rotation" toml:"rotation"`
	Scale           [2]float64 `yaml:"scale,flow" toml:"scale"`
	ArcStart        float64    `yaml:"arc_start" toml:"arc_start"`
	ArcAngle        float64    `yaml:"arc_angle" toml:"arc_angle"`
	AddCentralPoint bool       `yaml:"add_central_point" toml:"add_central_point"`
	Matrix          *f64.Aff3  `yaml:"matrix,flow,omitempty" toml:"matrix,omitempty"`
}

type ExportConfig struct {
	Behavior    ExportBehavior `yaml:"behavior" toml:"behavior"`
	AsHulls     bool           `yaml:"as_hulls" toml:"as_hulls"`
	Targets     []string       `yaml:"targets,omitempty" toml:"targets,omitempty"`
	AutoDispose bool           `yaml:"auto_dispose" toml:"auto_dispose"`
}

// DefaultConfig returns the configuration of [DefaultParams], exporting in
// the editor only.
func DefaultConfig() Config {
	return Config{
		VerticesCount:     4,
		Sizes:             []float64{10},
		RingRatio:         1,
		CornerLength:      -1,
		LimitEndingSlopes: true,
		ArcAngle:          360,
		ClosingMethod:     polygen.Slice,
		Offset:            OffsetConfig{Scale: [2]float64{1, 1}},
		Export:            ExportConfig{Behavior: ExportEditor},
	}
}

// LoadConfig reads a configuration file. The format is picked by the file's
// extension, which must be one of .yaml, .yml and .toml.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := DecodeConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a configuration in the given format, which is a file
// extension with or without the leading dot. Keys missing from data keep
// their default values, and unknown keys are an error.
func DecodeConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, err
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// Validate reports all invalid settings at once. Every reported error
// matches polygen.ErrInvalidParameter.
func (cfg Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, &polygen.Error{
			Kind: polygen.InvalidParameter,
			Op:   "Config",
			Err:  fmt.Errorf(format, args...),
		})
	}

	if cfg.VerticesCount < 1 {
		bad("vertices_count must be at least 1, got %d", cfg.VerticesCount)
	}
	validSizes(bad, "sizes", cfg.Sizes)
	if math.IsNaN(cfg.RingRatio) || math.IsInf(cfg.RingRatio, 0) || cfg.RingRatio > 1 {
		bad("ring_ratio must be a number no larger than 1, got %g", cfg.RingRatio)
	}
	if !(cfg.CornerSize >= 0) || math.IsInf(cfg.CornerSize, 0) {
		bad("corner_size must not be negative, got %g", cfg.CornerSize)
	}
	if cfg.CornerDetail < 0 {
		bad("corner_detail must not be negative, got %d", cfg.CornerDetail)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"arc_start", cfg.ArcStart},
		{"arc_angle", cfg.ArcAngle},
		{"offset.rotation", cfg.Offset.Rotation},
		{"offset.skew", cfg.Offset.Skew},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad("%s must be finite, got %g", f.name, f.v)
		}
	}
	if _, err := cfg.ClosingMethod.MarshalText(); err != nil {
		bad("%s", err)
	}
	if _, err := cfg.Export.Behavior.MarshalText(); err != nil {
		bad("%s", err)
	}
	for i, t := range cfg.Export.Targets {
		if t == "" {
			bad("export.targets[%d] is empty", i)
		}
	}
	for i, ins := range cfg.Inserts {
		if ins.VerticesCount < 1 {
			bad("inserts[%d].vertices_count must be at least 1, got %d", i, ins.VerticesCount)
		}
		validSizes(bad, fmt.Sprintf("inserts[%d].sizes", i), ins.Sizes)
		if ins.Matrix != nil {
			if m := polygen.AffineFromAff3(*ins.Matrix); m.IsNaN() || m.IsInf() {
				bad("inserts[%d].matrix must be finite", i)
			}
		}
	}
	return errors.Join(errs...)
}

func validSizes(bad func(string, ...any), name string, sizes []float64) {
	if len(sizes) == 0 {
		bad("%s must not be empty", name)
	}
	for i, s := range sizes {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			bad("%s[%d] must be finite, got %g", name, i, s)
		}
	}
}

// Params converts the configuration to controller parameters.
func (cfg Config) Params() Params {
	p := Params{
		VerticesCount: cfg.VerticesCount,
		Sizes:         append([]float64(nil), cfg.Sizes...),
		RingRatio:     cfg.RingRatio,
		CornerSize:    cfg.CornerSize,
		CornerDetail:  cfg.CornerDetail,
		CornerRange: polygen.CornerRange{
			Start:             cfg.CornerStart,
			Length:            cfg.CornerLength,
			LimitEndingSlopes: cfg.LimitEndingSlopes,
		},
		ArcStart:       polygen.Radians(cfg.ArcStart),
		ArcAngle:       polygen.Radians(cfg.ArcAngle),
		ClosingMethod:  cfg.ClosingMethod,
		RoundArcEnds:   cfg.RoundArcEnds,
		OffsetPosition: polygen.Vec(cfg.Offset.Position[0], cfg.Offset.Position[1]),
		OffsetRotation: polygen.Radians(cfg.Offset.Rotation),
		OffsetScale:    polygen.Vec(cfg.Offset.Scale[0], cfg.Offset.Scale[1]),
		OffsetSkew:     polygen.Radians(cfg.Offset.Skew),
	}
	for _, ins := range cfg.Inserts {
		p.Inserts = append(p.Inserts, ins.insert())
	}
	return p
}

func (ins InsertConfig) insert() Insert {
	scale := polygen.Vec(ins.Scale[0], ins.Scale[1])
	if ins.Scale == [2]float64{} {
		scale = polygen.Vec(1, 1)
	}
	angle := ins.ArcAngle
	if angle == 0 {
		angle = 360
	}
	pos := polygen.Vec(ins.Position[0], ins.Position[1])
	offset := polygen.Offset(pos, polygen.Radians(ins.Rotation), scale, 0)
	if ins.Matrix != nil {
		offset = polygen.AffineFromAff3(*ins.Matrix)
	}
	return Insert{
		Start: ins.Start,
		Generator: polygen.Generator{
			VerticesCount:   ins.VerticesCount,
			Sizes:           append([]float64(nil), ins.Sizes...),
			Offset:          offset,
			ArcStart:        polygen.Radians(ins.ArcStart),
			ArcEnd:          polygen.Radians(ins.ArcStart + angle),
			AddCentralPoint: ins.AddCentralPoint,
			ClosingMethod:   polygen.Chord,
		},
	}
}
