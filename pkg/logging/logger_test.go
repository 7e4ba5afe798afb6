package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLoggerWithServiceStampsEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithService("search")
	l.SetOutput(&buf)

	l.WithField("k", "v").Warn("hello")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if line["service"] != "search" || line["k"] != "v" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestServiceFieldCanBeOverridden(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithService("search")
	l.SetOutput(&buf)

	l.WithField("service", "other").Warn("hello")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if line["service"] != "other" {
		t.Fatalf("expected explicit service field to win, got %v", line["service"])
	}
}
