package primer

import (
	"fmt"
	"strings"
	"testing"
)

func TestDebugDisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebug(true)
	p := s.NewNode("gone", NodeKindGroup)
	p.Dispose()

	r := mustPanic(t, func() { p.AddChild(s.NewNode("c", NodeKindGroup)) })
	msg := fmt.Sprint(r)
	if !strings.Contains(msg, "disposed node") || !strings.Contains(msg, `"gone"`) {
		t.Errorf("panic = %q", msg)
	}
}

func TestDebugDisposedChildPanics(t *testing.T) {
	s := NewScene()
	s.SetDebug(true)
	c := s.NewNode("c", NodeKindGroup)
	c.Dispose()
	mustPanic(t, func() { s.Root().AddChild(c) })
}

func TestDebugTreeDepthWarns(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebug(true)

	n := s.Root()
	for i := 0; i <= debugMaxTreeDepth; i++ {
		c := s.NewNode(fmt.Sprintf("n%d", i), NodeKindGroup)
		n.AddChild(c)
		n = c
	}
	assertLogged(t, buf, "tree depth exceeds threshold")
}

func TestDebugChildCountWarns(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	s.SetDebug(true)

	for i := 0; i <= debugMaxChildCount; i++ {
		s.Root().AddChild(s.NewNode("c", NodeKindGroup))
	}
	assertLogged(t, buf, "child count exceeds threshold")
}

func TestReleaseModeSkipsChecks(t *testing.T) {
	buf := captureLogs(t)
	s := NewScene()
	for i := 0; i <= debugMaxChildCount; i++ {
		s.Root().AddChild(s.NewNode("c", NodeKindGroup))
	}
	if buf.Len() != 0 {
		t.Errorf("release mode should not log, got:\n%s", buf.String())
	}
}
