package ux

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFormatterUnknownFormat(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if err := f.Format(map[string]int{"steps": 3}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), `"steps": 3`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	var buf bytes.Buffer
	f, _ := NewFormatter("json", &FormatterOptions{Writer: &buf, Compact: true})

	if err := f.Format(map[string]int{"steps": 3}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(buf.String(), "  ") {
		t.Errorf("compact output should not be indented: %s", buf.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, _ := NewFormatter("yaml", &FormatterOptions{Writer: &buf})

	if err := f.Format(map[string]string{"status": "ok"}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), "status: ok") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestTextFormatterString(t *testing.T) {
	var buf bytes.Buffer
	f, _ := NewFormatter("text", &FormatterOptions{Writer: &buf})

	if err := f.Format("hello"); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTextFormatterRejectsComplexTypes(t *testing.T) {
	f, _ := NewFormatter("text", nil)
	if err := f.Format(struct{}{}); err == nil {
		t.Fatal("expected error for non-Stringer type")
	}
}
