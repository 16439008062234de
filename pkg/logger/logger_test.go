package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInitWriter_JSONIncludesFieldsAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "json"); err != nil {
		t.Fatalf("InitWriter: %v", err)
	}
	if err := SetLevelString("info"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	Named("calc").Info(ctx, "calculated", String("calculator", "dunk"), Int("status", 200), Error(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "calculated" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("request_id = %v", entry["request_id"])
	}
	if entry["component"] != "calc" {
		t.Fatalf("component = %v", entry["component"])
	}
	if entry["calculator"] != "dunk" {
		t.Fatalf("calculator = %v", entry["calculator"])
	}
}

func TestSetLevelString_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "text"); err != nil {
		t.Fatalf("InitWriter: %v", err)
	}
	defer func() { _ = SetLevelString("info") }()

	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("SetLevelString: %v", err)
	}
	Get().Info(context.Background(), "hidden")
	Get().With(String("k", "v")).Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestInvalidSettingsAreRejected(t *testing.T) {
	if err := SetLevelString("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := InitWriter(&bytes.Buffer{}, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "discarded", String("k", "v"))
}
