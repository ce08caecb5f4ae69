package ebitenplayer

import (
	"image/color"
	"testing"

	primer "github.com/meghana2124/PrimerTools"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(primer.NewScene(), primer.NewDirector(), RunConfig{Width: 640, Height: 480})
	if g.cfg.PixelsPerUnit != 40 {
		t.Errorf("PixelsPerUnit = %v, want 40", g.cfg.PixelsPerUnit)
	}
	if g.cfg.Background != defaultBackground {
		t.Errorf("Background = %v, want %v", g.cfg.Background, defaultBackground)
	}
	if g.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0", g.Elapsed())
	}
}

func TestLayoutIgnoresOutsideSize(t *testing.T) {
	g := NewGame(primer.NewScene(), primer.NewDirector(), RunConfig{Width: 320, Height: 200})
	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 200 {
		t.Errorf("Layout = (%d, %d), want (320, 200)", w, h)
	}
}

func TestKindColorsDistinct(t *testing.T) {
	kinds := []primer.NodeKind{
		primer.NodeKindTick,
		primer.NodeKindText,
		primer.NodeKindGlyph,
		primer.NodeKindArrow,
		primer.NodeKindPrimitive,
	}
	seen := map[color.Color]primer.NodeKind{}
	for _, k := range kinds {
		c := kindColor(k)
		if prev, ok := seen[c]; ok {
			t.Errorf("kind %q shares color with %q", k, prev)
		}
		seen[c] = k
	}
}

func TestRunRejectsEmptyWindow(t *testing.T) {
	err := Run(primer.NewScene(), primer.NewDirector(), RunConfig{}, nil)
	if err == nil {
		t.Fatal("expected error for zero window size")
	}
}
