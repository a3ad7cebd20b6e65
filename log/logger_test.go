package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Name     string
		Expected Level
		Fails    bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{" notice ", Notice, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for _, c := range tests {
		l, err := ParseLevel(c.Name)
		if (err != nil) != c.Fails {
			t.Errorf("ParseLevel(%q) error = %v, expected failure %v", c.Name, err, c.Fails)
		}
		if l != c.Expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", c.Name, l, c.Expected)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(&bytes.Buffer{})

	logger := New("test")

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message written at notice level: %q", buf.String())
	}

	SetLevel(Debug)
	logger.Debugf("shown %d", 1)
	if !strings.Contains(buf.String(), "shown 1") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[test]") {
		t.Errorf("module name missing from output: %q", buf.String())
	}
}

func TestLevel_String(t *testing.T) {
	for _, l := range []Level{Debug, Info, Notice, Warning, Error} {
		parsed, err := ParseLevel(l.String())
		if err != nil || parsed != l {
			t.Errorf("ParseLevel(%q) = %v, %v, expected %v", l.String(), parsed, err, l)
		}
	}

	if s := Level(9).String(); s != "level(9)" {
		t.Errorf("Level(9).String() = %q", s)
	}
}
