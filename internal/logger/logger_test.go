package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDebugModeWritesStdout(t *testing.T) {
	l := New("debug", Options{})
	if l == nil {
		t.Fatal("expected logger instance")
	}
	l.Sugar().Debugw("debug_probe", "key", "value")
}

func TestNewReleaseModeCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	l := New("release", Options{Dir: dir, Filename: "test.log"})
	if l == nil {
		t.Fatal("expected logger instance")
	}
	l.Sugar().Infow("release_probe")
	_ = l.Sync()

	if _, err := os.Stat(filepath.Join(dir, "test.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestZFallsBackWhenUninitialized(t *testing.T) {
	saved := L
	L = nil
	defer func() { L = saved }()

	if Z() == nil {
		t.Fatal("expected fallback logger")
	}
	Infow("fallback_probe", "ok", true)
}

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := normalizePositiveInt(3, 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
