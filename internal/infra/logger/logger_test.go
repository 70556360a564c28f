package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONWithSession(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cleanup, err := Setup(Config{Dir: dir, Session: "s-1"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	if Session() != "s-1" {
		t.Fatalf("expected session s-1, got %q", Session())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time to be set")
	}

	L().Info("convert.score", "score", 36)
	L().Debug("hidden")

	path := Path()
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records (init + info), got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "convert.score" || rec["session"] != "s-1" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestSetup_GeneratesSessionID(t *testing.T) {
	cleanup, err := Setup(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if len(Session()) != 36 {
		t.Fatalf("expected uuid session id, got %q", Session())
	}
}

func TestCleanup_ResetsToDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Dir: t.TempDir(), Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	if IsReady() == nil {
		t.Fatalf("expected logger not ready after cleanup")
	}
	if Path() != "" || Session() != "" {
		t.Fatalf("expected state cleared, path=%q session=%q", Path(), Session())
	}
	L().Info("ignored")
}

func TestSetup_UnwritableDirFallsBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanup, err := Setup(Config{Dir: filepath.Join(blocker, "logs")})
	if err == nil {
		t.Fatalf("expected error creating log dir under a file")
	}
	if cleanup != nil {
		t.Fatalf("expected no cleanup on failure")
	}
	if IsReady() == nil {
		t.Fatalf("expected discard logger after failure")
	}
}
