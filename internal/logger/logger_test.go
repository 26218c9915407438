package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug %d", 1)
			log.Info("info %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "debug 1"); got != tt.wantDebug {
				t.Errorf("debug visible = %v, want %v (out=%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info 2"); got != tt.wantInfo {
				t.Errorf("info visible = %v, want %v (out=%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestNamedFollowsSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	child := log.Named("engine")

	child.Info("hidden")
	log.SetLevel(LevelVerbose)
	child.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected no output while off, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "engine") {
		t.Fatalf("expected named debug line, got %q", out)
	}
	if child.GetLevel() != LevelVerbose {
		t.Fatalf("expected child level verbose, got %d", child.GetLevel())
	}
}
