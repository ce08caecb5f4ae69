package primer

import (
	"context"
	"log/slog"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard every level")
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)
	Logger().Debug("hello", "k", 1)
	assertLogged(t, buf, "msg=hello")
	assertLogged(t, buf, "k=1")
}
