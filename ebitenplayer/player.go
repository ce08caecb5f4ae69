// Package ebitenplayer drives a primer Director from an Ebitengine game loop
// and draws a debug view of the scene: one square per active node, projected
// orthographically onto the XY plane.
package ebitenplayer

import (
	"errors"
	"fmt"
	"image/color"

	primer "github.com/meghana2124/PrimerTools"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and the debug view.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// PixelsPerUnit maps scene units to screen pixels. Zero means 40.
	PixelsPerUnit float64
	// ShowFPS overlays FPS, TPS, node and player counts.
	ShowFPS bool
	// Background fills the screen each frame. Nil means a dark blue-grey.
	Background color.Color
}

var defaultBackground = color.RGBA{R: 26, G: 26, B: 38, A: 255}

// Game implements ebiten.Game. Each tick advances the Director by 1/TPS
// seconds unless paused; Space toggles pause.
type Game struct {
	// OnUpdate, if set, runs once per tick before the Director advances.
	// Returning an error stops the game.
	OnUpdate func(dt float64) error

	scene    *primer.Scene
	director *primer.Director
	cfg      RunConfig
	dot      *ebiten.Image
	paused   bool
	elapsed  float64
}

// NewGame creates a game for scene, ticking director.
func NewGame(scene *primer.Scene, director *primer.Director, cfg RunConfig) *Game {
	if cfg.PixelsPerUnit == 0 {
		cfg.PixelsPerUnit = 40
	}
	if cfg.Background == nil {
		cfg.Background = defaultBackground
	}
	dot := ebiten.NewImage(1, 1)
	dot.Fill(color.White)
	return &Game{scene: scene, director: director, cfg: cfg, dot: dot}
}

// Elapsed returns the scene time advanced so far, in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	dt := 1.0 / float64(ebiten.TPS())
	if g.OnUpdate != nil {
		if err := g.OnUpdate(dt); err != nil {
			return err
		}
	}
	g.director.Update(dt)
	g.elapsed += dt
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.drawNode(screen, g.scene.Root())

	if g.cfg.ShowFPS {
		status := ""
		if g.paused {
			status = " (paused)"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nNodes: %d\nPlayers: %d%s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.Len(), g.director.Len(), status))
	}
}

func (g *Game) drawNode(screen *ebiten.Image, n *primer.Node) {
	if !n.Active() {
		return
	}
	if n.Kind != primer.NodeKindGroup && n.Opacity > 0 {
		g.drawDot(screen, n)
	}
	for _, c := range n.Children() {
		g.drawNode(screen, c)
	}
}

func (g *Game) drawDot(screen *ebiten.Image, n *primer.Node) {
	w := n.WorldTransform()
	size := max(w.Scale.X(), w.Scale.Y()) * g.cfg.PixelsPerUnit * 0.1
	if size < 1 {
		return
	}
	x := float64(g.cfg.Width)/2 + w.Position.X()*g.cfg.PixelsPerUnit
	y := float64(g.cfg.Height)/2 - w.Position.Y()*g.cfg.PixelsPerUnit

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleWithColor(kindColor(n.Kind))
	op.ColorScale.ScaleAlpha(float32(n.Opacity))
	screen.DrawImage(g.dot, op)
}

func kindColor(k primer.NodeKind) color.Color {
	switch k {
	case primer.NodeKindTick:
		return color.RGBA{R: 255, G: 153, B: 51, A: 255}
	case primer.NodeKindText:
		return color.RGBA{R: 230, G: 230, B: 77, A: 255}
	case primer.NodeKindGlyph:
		return color.RGBA{R: 102, G: 204, B: 255, A: 255}
	case primer.NodeKindArrow:
		return color.RGBA{R: 255, G: 102, B: 178, A: 255}
	default:
		return color.RGBA{R: 153, G: 255, B: 102, A: 255}
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and plays the scene until the window closes or
// OnUpdate fails.
func Run(scene *primer.Scene, director *primer.Director, cfg RunConfig, onUpdate func(dt float64) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("ebitenplayer: window size must be positive")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(scene, director, cfg)
	g.OnUpdate = onUpdate
	return ebiten.RunGame(g)
}
