package logger_adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Stalyer/six-cities/internal/core/port"
)

type fakePoster struct {
	tags    []string
	records []map[string]interface{}
	closed  bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.records = append(f.records, message.(port.Fields))
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_WritesFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"use_case": "ToggleFavorite"}).
		Error("Failed to change favorite status", errors.New("boom"), port.Fields{"offer_id": 3})

	out := buf.String()
	for _, want := range []string{"Failed to change favorite status", "use_case=ToggleFavorite", "offer_id=3", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Debug("hidden too", nil)
	if buf.Len() != 0 {
		t.Errorf("nothing below warn must be written, got %q", buf.String())
	}
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scoped := adapter.WithFields(port.Fields{"trace_id": "abc"})
	scoped.Debug("skipped", nil)
	scoped.Error("Request failed", errors.New("boom"), port.Fields{"status": 500})

	if len(poster.records) != 1 {
		t.Fatalf("expected one record, got %d", len(poster.records))
	}
	rec := poster.records[0]
	if poster.tags[0] != "error" || rec["trace_id"] != "abc" || rec["error"] != "boom" || rec["status"] != 500 {
		t.Errorf("unexpected record %v", rec)
	}
	if _, ok := adapter.fields["trace_id"]; ok {
		t.Error("WithFields must not change the parent logger")
	}

	if err := adapter.Close(); err != nil || !poster.closed {
		t.Error("Close must close the client")
	}
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	if _, err := NewFluentLoggerAdapter(nil, nil); err == nil {
		t.Error("expected error for nil client")
	}
}

func TestMultiLoggerAdapter(t *testing.T) {
	first, second := &fakePoster{}, &fakePoster{}
	a, _ := NewFluentLoggerAdapter(first, nil)
	b, _ := NewFluentLoggerAdapter(second, nil)

	multi, err := NewMultiLoggerAdapter(a, nil, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	multi.WithFields(port.Fields{"component": "web"}).Warn("Slow request", nil)

	if len(first.records) != 1 || len(second.records) != 1 {
		t.Fatalf("record must reach every logger: %d, %d", len(first.records), len(second.records))
	}
	if second.records[0]["component"] != "web" {
		t.Errorf("fields must be propagated, got %v", second.records[0])
	}

	single, _ := NewMultiLoggerAdapter(a)
	if single != port.LoggerPort(a) {
		t.Error("single logger must be returned as is")
	}
	if _, err := NewMultiLoggerAdapter(); err == nil {
		t.Error("expected error without loggers")
	}
}
