package primer

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// labelEndOffset is the gap between the end of the rod and a LabelEnd label.
const labelEndOffset = 0.4

// tickStagger is the delay between the starts of successive tick tweens.
const tickStagger = 0.05

// AxisLabelPosition places the axis label.
type AxisLabelPosition uint8

const (
	LabelNone AxisLabelPosition = iota
	LabelAlong
	LabelEnd
)

func (p AxisLabelPosition) String() string {
	switch p {
	case LabelNone:
		return "none"
	case LabelAlong:
		return "along"
	case LabelEnd:
		return "end"
	default:
		return fmt.Sprintf("AxisLabelPosition(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p AxisLabelPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *AxisLabelPosition) UnmarshalText(b []byte) error {
	for v := LabelNone; v <= LabelEnd; v++ {
		if v.String() == string(b) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("unknown label position %q", b)
}

// TickData is one tick: the value it marks and the text shown next to it.
type TickData struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// NewTickData labels value, shifted by labelOffset, with at most maxDecimals
// fraction digits.
func NewTickData(value float64, labelOffset, maxDecimals int) TickData {
	return TickData{Value: value, Label: FormatNumber(value+float64(labelOffset), maxDecimals)}
}

// CalculateTicks generates ticks every Step units within [lo, hi]: zero
// first when ShowZero is set, then the positive ticks ascending, then the
// negative ticks descending. The step is rounded to MaxDecimals first; a step
// that rounds to zero yields no ticks.
func CalculateTicks(lo, hi float64, cfg TickConfig) []TickData {
	multiplier := math.Pow(10, float64(cfg.MaxDecimals))
	step := math.Round(cfg.Step*multiplier) / multiplier
	if step <= 0 {
		return nil
	}

	var ticks []TickData
	if cfg.ShowZero {
		ticks = append(ticks, NewTickData(0, cfg.LabelNumberOffset, cfg.MaxDecimals))
	}
	for v := math.Max(step, lo); v <= hi; v += step {
		ticks = append(ticks, NewTickData(v, cfg.LabelNumberOffset, cfg.MaxDecimals))
	}
	for v := math.Min(-step, hi); v >= lo; v -= step {
		ticks = append(ticks, NewTickData(v, cfg.LabelNumberOffset, cfg.MaxDecimals))
	}
	return ticks
}

// CropTicks limits ticks to maxTicks entries by keeping every
// (len/maxTicks + 1)-th tick, taking the first maxTicks-1 of those and always
// appending the last tick. A non-positive maxTicks disables cropping.
func CropTicks(ticks []TickData, maxTicks int) []TickData {
	if maxTicks <= 0 || len(ticks) <= maxTicks {
		return ticks
	}
	pick := len(ticks)/maxTicks + 1
	cropped := make([]TickData, 0, maxTicks)
	for i, t := range ticks {
		if len(cropped) == maxTicks-1 {
			break
		}
		if i%pick == 0 {
			cropped = append(cropped, t)
		}
	}
	return append(cropped, ticks[len(ticks)-1])
}

// Axis is a number line made of a rod, ticks and a label, all reconciled
// under one node. Apply animates it from its current configuration to a new
// one.
type Axis struct {
	// TickFactory builds a tick node. When nil no ticks are shown.
	TickFactory Factory

	node       *Node
	primitives *PrimitiveCache
	parts      *Container
	cfg        AxisConfig
	ticks      []TickData
}

// NewAxis creates an axis node named name under parent. The rod is drawn
// with a cylinder from primitives. The axis starts with DefaultAxisConfig
// but no children; call Apply to build them.
func NewAxis(parent *Node, name string, primitives *PrimitiveCache) *Axis {
	node := parent.Scene().NewNode(name, NodeKindGroup)
	parent.AddChild(node)
	a := &Axis{
		node:       node,
		primitives: primitives,
		parts:      NewContainer(node),
		cfg:        DefaultAxisConfig(),
	}
	a.TickFactory = func() *Node {
		return node.Scene().NewNode("Tick", NodeKindTick)
	}
	return a
}

// Node returns the axis root node.
func (a *Axis) Node() *Node {
	return a.node
}

// Config returns the configuration last applied.
func (a *Axis) Config() AxisConfig {
	return a.cfg
}

// Ticks returns the ticks shown after the last Apply.
func (a *Axis) Ticks() []TickData {
	return slices.Clone(a.ticks)
}

func (a *Axis) scale() float64 {
	if a.cfg.Max == a.cfg.Min {
		return 0
	}
	return a.cfg.Length / (a.cfg.Max - a.cfg.Min)
}

func (a *Axis) rodStart() float64 { return a.cfg.Min * a.scale() }
func (a *Axis) rodEnd() float64   { return a.cfg.Max * a.scale() }

// Apply rebuilds the axis for cfg and returns the tween that animates the
// change: removed ticks leave first, then the rod, label and remaining ticks
// move, then new ticks grow in.
func (a *Axis) Apply(cfg AxisConfig) *Tween {
	a.cfg = cfg

	add, update, remove := a.transitionTicks()
	rod := a.transitionRod()
	label := a.transitionLabel()

	var leaving []*Tween
	for _, n := range a.parts.Purge(true) {
		leaving = append(leaving, ShrinkAndDispose(n))
	}

	return Sequential(
		remove,
		Parallel(update, rod, label, Parallel(leaving...)),
		add,
	)
}

func (a *Axis) prepareTicks() []TickData {
	t := a.cfg.Ticks
	if !t.Show || t.Step <= 0 || a.TickFactory == nil {
		return nil
	}
	expected := t.Manual
	if len(expected) == 0 {
		expected = CalculateTicks(a.cfg.Min, a.cfg.Max, t)
	}
	return CropTicks(expected, t.MaxTicks)
}

func (a *Axis) tickPosition(value float64) Vec3 {
	t := a.cfg.Ticks
	return Vec3{(value + t.ValuePositionOffset) * a.scale(), t.Offset, 0}
}

func (a *Axis) transitionTicks() (add, update, remove *Tween) {
	ticks := a.parts.AddContainer("Ticks container").SetDefaults()
	a.ticks = a.prepareTicks()

	var adds, updates []*Tween
	for _, data := range a.ticks {
		tick := ticks.AddWith("Tick "+data.Label, NodeKindTick, a.TickFactory)
		tick.UserData = data

		if ticks.IsCreated(tick) {
			tick.Position = a.tickPosition(data.Value)
			tick.Scale = VecZero
			adds = append(adds, ScaleFromTo(tick, Const(VecZero), VecOne))
		} else {
			updates = append(updates, MoveTo(tick, a.tickPosition(data.Value)))
		}
	}

	removed := ticks.Purge(true)
	slices.SortStableFunc(removed, func(x, y *Node) int {
		return cmp.Compare(math.Abs(tickValue(y)), math.Abs(tickValue(x)))
	})
	removes := make([]*Tween, 0, len(removed))
	for _, tick := range removed {
		removes = append(removes, Parallel(
			ScaleTo(tick, VecZero),
			MoveTo(tick, a.tickPosition(tickValue(tick))),
		).OnDispose(tick.Dispose))
	}

	return staggered(adds), Parallel(updates...), staggered(removes)
}

// staggered starts tweens tickStagger apart and squeezes the whole run into
// DefaultDuration.
func staggered(tweens []*Tween) *Tween {
	if len(tweens) == 0 {
		return nil
	}
	return SequentialWithDelay(tickStagger, tweens...).WithDuration(DefaultDuration)
}

func tickValue(n *Node) float64 {
	if d, ok := n.UserData.(TickData); ok {
		return d.Value
	}
	return 0
}

func (a *Axis) transitionRod() *Tween {
	rod := a.parts.AddContainer("Rod")
	position := Vec3{a.rodStart(), 0, 0}
	scale := Vec3{a.rodEnd() - a.rodStart(), a.cfg.Rod.Thickness, a.cfg.Rod.Thickness}

	a.drawBar(rod)

	var move, grow *Tween
	if rod.Scope().Position != position {
		move = MoveTo(rod.Scope(), position)
	}
	if rod.Scope().Scale != scale {
		grow = ScaleTo(rod.Scope(), scale)
	}
	return Parallel(move, grow)
}

// drawBar lays a unit cylinder along +X so the rod's scale is its length.
func (a *Axis) drawBar(rod *Container) {
	if a.primitives == nil {
		rod.Purge(false)
		return
	}
	cylinder := rod.AddPrimitive(a.primitives, PrimitiveCylinder, "")
	cylinder.Position = Vec3{0.5, 0, 0}
	cylinder.Rotation = Euler(0, 0, -90)
	cylinder.Scale = Vec3{0.0375, 0.5, 0.0375}
	rod.Purge(false)
}

func (a *Axis) transitionLabel() *Tween {
	l := a.cfg.Label
	if !l.Show {
		return nil
	}
	label := a.parts.Next("Label", NodeKindText, nil, nil)
	label.UserData = l.Text

	var pos Vec3
	switch l.Position {
	case LabelAlong:
		pos = Vec3{a.cfg.Length / 2, 0, 0}
	case LabelEnd:
		pos = Vec3{a.rodEnd() + labelEndOffset, 0, 0}
	}
	pos = pos.Add(l.Offset)
	rotation := Euler(l.Rotation.X(), l.Rotation.Y(), l.Rotation.Z())

	var move, rotate *Tween
	if label.Position != pos {
		move = MoveTo(label, pos)
	}
	if !label.Rotation.ApproxEqual(rotation) {
		rotate = RotateTo(label, rotation)
	}
	return Parallel(move, rotate)
}

// Dispose removes the axis node and everything under it.
func (a *Axis) Dispose() {
	a.parts.Reset()
	a.node.Dispose()
}
