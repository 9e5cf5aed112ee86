package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorderAppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "interactions.jsonl")

	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{Timestamp: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), ChatID: 42, UserMessage: "hi", AssistantResponse: "hello", Model: "gpt-4o-mini", TotalTokens: 12}
	ev2 := Event{Timestamp: time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC), ChatID: 43, UserMessage: "foo", AssistantResponse: "bar"}

	if err := r.AppendInteraction(ev1); err != nil {
		t.Fatalf("append 1: %v", err)
	}
	if err := r.AppendInteraction(ev2); err != nil {
		t.Fatalf("append 2: %v", err)
	}

	events, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ChatID != 42 || events[0].AssistantResponse != "hello" || events[0].TotalTokens != 12 {
		t.Fatalf("unexpected event[0]: %+v", events[0])
	}
	if events[1].ChatID != 43 || events[1].UserMessage != "foo" {
		t.Fatalf("unexpected event[1]: %+v", events[1])
	}
}

func TestFileRecorderSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interactions.jsonl")

	r, err := NewFileRecorder(path)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	if err := r.AppendInteraction(Event{ChatID: 1, UserMessage: "ok"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	_ = f.Close()
	if err := r.AppendInteraction(Event{ChatID: 2, UserMessage: "still ok"}); err != nil {
		t.Fatalf("append after garbage: %v", err)
	}

	events, err := r.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected garbage line skipped, got %d events", len(events))
	}
}
