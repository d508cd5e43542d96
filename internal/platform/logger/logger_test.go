package logger

import "testing"

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"api_key", "sk-123",
		"session_id", "0b8f3c2e",
		"subject", "Mathematics",
		"dangling",
	})
	if len(out) != 7 {
		t.Fatalf("len=%d out=%v", len(out), out)
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("api_key not redacted: %v", out[1])
	}
	if s, _ := out[3].(string); len(s) != len("hash:")+12 {
		t.Fatalf("session_id not hashed: %v", out[3])
	}
	if out[5] != "Mathematics" {
		t.Fatalf("plain value changed: %v", out[5])
	}
	if out[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", out[6])
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop().With("service", "test")
	l.Debug("debug", "k", 1)
	l.Info("info")
	l.Warn("warn")
	l.Error("error", "error", "boom")
	l.Sync()
}
