package namelog

import (
	"bytes"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/namekit/typename/internal/testtypes"
)

func TestField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("created", Field[testtypes.Example]())
	logger.Info("received", FieldOf(&testtypes.Example{}))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()[Key]; got != "testtypes.Example" {
		t.Errorf("Field logged %q, want %q", got, "testtypes.Example")
	}
	if got := entries[1].ContextMap()[Key]; got != "*testtypes.Example" {
		t.Errorf("FieldOf logged %q, want %q", got, "*testtypes.Example")
	}
}

func TestFieldOf_Nil(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("dropped", FieldOf(nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()[Key]; ok {
		t.Errorf("expected no %q field for nil value", Key)
	}
}

func TestAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("created", Attr[testtypes.Example]())

	if !bytes.Contains(buf.Bytes(), []byte(Key+"=testtypes.Example")) {
		t.Errorf("log output %q does not contain type attribute", buf.String())
	}
}

func TestAttrOf(t *testing.T) {
	attr := AttrOf(testtypes.Box[int]{})
	if attr.Key != Key {
		t.Fatalf("attribute key = %q, want %q", attr.Key, Key)
	}
	if got := attr.Value.Resolve().String(); got != "testtypes.Box[int]" {
		t.Errorf("attribute value = %q, want %q", got, "testtypes.Box[int]")
	}

	if got := AttrOf(nil).Value.Resolve().String(); got != "" {
		t.Errorf("nil attribute value = %q, want empty", got)
	}
}
