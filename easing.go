package primer

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

// Easing maps normalized time in [0, 1] to normalized progress in [0, 1].
// Every Easing must satisfy ease(0) == 0 and ease(1) == 1.
type Easing func(t float64) float64

// FromGween adapts a gween curve to an Easing. The endpoints are pinned so
// float32 rounding inside the curve cannot leave a tween short of its target,
// and the output is clamped to [0, 1], which flattens the overshoot of
// elastic and back curves.
func FromGween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return clamp01(float64(fn(float32(t), 0, 1, 1)))
	}
}

// Built-in curves.
var (
	Linear     Easing = func(t float64) float64 { return clamp01(t) }
	InOutCubic        = FromGween(ease.InOutCubic)
)

// EaseMode names an easing curve so it can be chosen from configuration.
type EaseMode uint8

const (
	EaseCubic EaseMode = iota
	EaseLinear
	EaseQuadratic
	EaseQuartic
	EaseSine
	EaseExponential
	EaseElastic
	EaseBounce
	EaseBack
	EaseCubicIn
	EaseCubicOut
)

var easeModeNames = [...]string{
	EaseCubic:       "cubic",
	EaseLinear:      "linear",
	EaseQuadratic:   "quadratic",
	EaseQuartic:     "quartic",
	EaseSine:        "sine",
	EaseExponential: "exponential",
	EaseElastic:     "elastic",
	EaseBounce:      "bounce",
	EaseBack:        "back",
	EaseCubicIn:     "cubic-in",
	EaseCubicOut:    "cubic-out",
}

func (m EaseMode) String() string {
	if int(m) < len(easeModeNames) {
		return easeModeNames[m]
	}
	return fmt.Sprintf("EaseMode(%d)", uint8(m))
}

// ParseEaseMode returns the mode with the given name.
func ParseEaseMode(s string) (EaseMode, error) {
	for i, name := range easeModeNames {
		if name == s {
			return EaseMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ease mode %q", s)
}

// MarshalText implements encoding.TextMarshaler so modes read naturally in
// YAML configuration.
func (m EaseMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *EaseMode) UnmarshalText(b []byte) error {
	v, err := ParseEaseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Method returns the Easing for the mode. Unknown modes fall back to cubic
// in-out.
func (m EaseMode) Method() Easing {
	switch m {
	case EaseLinear:
		return Linear
	case EaseQuadratic:
		return FromGween(ease.InOutQuad)
	case EaseQuartic:
		return FromGween(ease.InOutQuart)
	case EaseSine:
		return FromGween(ease.InOutSine)
	case EaseExponential:
		return FromGween(ease.InOutExpo)
	case EaseElastic:
		return FromGween(ease.OutElastic)
	case EaseBounce:
		return FromGween(ease.OutBounce)
	case EaseBack:
		return FromGween(ease.InOutBack)
	case EaseCubicIn:
		return FromGween(ease.InCubic)
	case EaseCubicOut:
		return FromGween(ease.OutCubic)
	default:
		return InOutCubic
	}
}

const springSamples = 120

// SpringEasing returns a critically damped spring curve. Higher angular
// frequencies settle faster. The spring is simulated once over unit time and
// normalized so it ends exactly at 1.
func SpringEasing(angularFrequency float64) Easing {
	if angularFrequency <= 0 {
		return Linear
	}
	spring := harmonica.NewSpring(1.0/springSamples, angularFrequency, 1.0)
	samples := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = pos
	}
	final := samples[springSamples]
	if final <= 0 {
		return Linear
	}
	for i := range samples {
		samples[i] = clamp01(samples[i] / final)
	}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(math.Floor(x))
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	case math.IsNaN(t):
		return 0
	default:
		return t
	}
}
