package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		arg     []any
		wantMsg string
		wantKV  int
	}{
		{name: "Empty", arg: nil, wantMsg: "", wantKV: 0},
		{name: "Message only", arg: []any{"hello"}, wantMsg: "hello", wantKV: 0},
		{name: "Message with pairs", arg: []any{"tick", "sessions", 3, "phase", "pending"}, wantMsg: "tick", wantKV: 4},
		{name: "Dangling key falls back to Sprint", arg: []any{"a", "b"}, wantMsg: "ab", wantKV: 0},
		{name: "Non-string key falls back", arg: []any{"a", 1, 2}, wantMsg: "a1 2", wantKV: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, kv := split(tt.arg)
			if msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msg, tt.wantMsg)
			}
			if len(kv) != tt.wantKV {
				t.Errorf("len(kv) = %d, want %d", len(kv), tt.wantKV)
			}
		})
	}
}

func TestWithFieldsAccumulates(t *testing.T) {
	ctx := WithFields(context.Background(), "task_id", "t1")
	ctx = WithFields(ctx, "kind", "start")

	fields, _ := ctx.Value(ctxKey{}).([]any)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field entries, got %d", len(fields))
	}
	if fields[0] != "task_id" || fields[3] != "start" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: "production", Encoding: "json"})
	l.Info(context.Background(), "started", "port", 8080)
	l.Infof(context.Background(), "listening on %d", 8080)

	NewNop().Warn(context.Background(), "discarded")
}
