package primer

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

// mustPanic runs fn and returns the recovered value, failing the test if fn
// does not panic.
func mustPanic(t *testing.T, fn func()) (r any) {
	t.Helper()
	defer func() {
		r = recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// captureLogs installs a debug-level text logger for the duration of the test
// and returns the buffer it writes to.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func assertLogged(t *testing.T, buf *bytes.Buffer, substr string) {
	t.Helper()
	if !strings.Contains(buf.String(), substr) {
		t.Errorf("log should contain %q, got:\n%s", substr, buf.String())
	}
}

// recordingStore collects node events.
type recordingStore struct {
	events []NodeEvent
}

func (r *recordingStore) EmitEvent(e NodeEvent) {
	r.events = append(r.events, e)
}

func (r *recordingStore) count(typ NodeEventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// callLog records hook invocations in order.
type callLog []string

func (l *callLog) hook(name string) func() {
	return func() { *l = append(*l, name) }
}

func (l callLog) String() string {
	return fmt.Sprint([]string(l))
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
