package primer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AxisConfig describes an axis. Values are passed to Axis.Apply, which
// rebuilds the axis and returns the transition tween.
type AxisConfig struct {
	Min    float64     `yaml:"min"`
	Max    float64     `yaml:"max"`
	Length float64     `yaml:"length"`
	Rod    RodConfig   `yaml:"rod"`
	Ticks  TickConfig  `yaml:"ticks"`
	Label  LabelConfig `yaml:"label"`
}

// RodConfig describes the axis line.
type RodConfig struct {
	Thickness float64 `yaml:"thickness"`
}

// TickConfig describes how ticks are generated.
type TickConfig struct {
	Show                bool       `yaml:"show"`
	ShowZero            bool       `yaml:"showZero"`
	Step                float64    `yaml:"step"`
	MaxTicks            int        `yaml:"maxTicks"`
	MaxDecimals         int        `yaml:"maxDecimals"`
	Offset              float64    `yaml:"offset"`
	LabelNumberOffset   int        `yaml:"labelNumberOffset"`
	ValuePositionOffset float64    `yaml:"valuePositionOffset"`
	Manual              []TickData `yaml:"manual,omitempty"`
}

// LabelConfig describes the axis label. Rotation holds Euler angles in
// degrees.
type LabelConfig struct {
	Show     bool              `yaml:"show"`
	Text     string            `yaml:"text"`
	Offset   Vec3              `yaml:"offset"`
	Rotation Vec3              `yaml:"rotation"`
	Position AxisLabelPosition `yaml:"position"`
}

// DefaultAxisConfig returns an axis from 0 to 10, ten units long, with a tick
// every 2 units and the label at the end.
func DefaultAxisConfig() AxisConfig {
	return AxisConfig{
		Min:    0,
		Max:    10,
		Length: 10,
		Rod:    RodConfig{Thickness: 1},
		Ticks: TickConfig{
			Show:        true,
			Step:        2,
			MaxTicks:    50,
			MaxDecimals: 2,
		},
		Label: LabelConfig{
			Show:     true,
			Text:     "Label",
			Position: LabelEnd,
		},
	}
}

// DecodeAxisConfig parses YAML on top of DefaultAxisConfig, so omitted fields
// keep their defaults.
func DecodeAxisConfig(data []byte) (AxisConfig, error) {
	cfg := DefaultAxisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AxisConfig{}, fmt.Errorf("failed to parse axis config: %w", err)
	}
	return cfg, nil
}

// LoadAxisConfig reads an axis config file. A missing file is not an error:
// the defaults are returned.
func LoadAxisConfig(path string) (AxisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultAxisConfig(), nil
		}
		return AxisConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return DecodeAxisConfig(data)
}

// ArrowConfig describes an arrow between two fixed points in its parent's
// space.
type ArrowConfig struct {
	Tail         Vec3    `yaml:"tail"`
	Head         Vec3    `yaml:"head"`
	TailSpace    float64 `yaml:"tailSpace"`
	HeadSpace    float64 `yaml:"headSpace"`
	TailPointer  bool    `yaml:"tailPointer"`
	HeadPointer  bool    `yaml:"headPointer"`
	Thickness    float64 `yaml:"thickness"`
	AxisRotation float64 `yaml:"axisRotation"`
	ArrowLength  float64 `yaml:"arrowLength"`
}

// DefaultArrowConfig returns a unit arrow from the origin to (1, 1, 1) with a
// head pointer.
func DefaultArrowConfig() ArrowConfig {
	return ArrowConfig{
		Tail:        VecZero,
		Head:        VecOne,
		HeadPointer: true,
		Thickness:   1,
		ArrowLength: 0.18,
	}
}

// DecodeArrowConfig parses YAML on top of DefaultArrowConfig.
func DecodeArrowConfig(data []byte) (ArrowConfig, error) {
	cfg := DefaultArrowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArrowConfig{}, fmt.Errorf("failed to parse arrow config: %w", err)
	}
	return cfg, nil
}
