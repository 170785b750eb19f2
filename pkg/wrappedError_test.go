package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWrappedErrorSpecify(t *testing.T) {
	wErr := NewWrappedError("doWork()")
	if wErr.Error() != "" {
		t.Fatalf("empty wrapper produced error text: %q", wErr.Error())
	}

	cause := errors.New("boom")
	wErr.Specify(cause, "doWork inner call")

	if !errors.Is(wErr, cause) {
		t.Fatalf("wrapped error lost its cause")
	}
	text := wErr.Error()
	if !strings.Contains(text, "doWork()") || !strings.Contains(text, "boom") {
		t.Fatalf("unexpected error text: %q", text)
	}
}

func TestWrappedErrorSpecifyIgnoresNil(t *testing.T) {
	wErr := NewWrappedError("doWork()")
	wErr.Specify(nil, "should be ignored")
	if wErr.Error() != "" {
		t.Fatalf("nil specify changed wrapper: %q", wErr.Error())
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, c := range cases {
		level, ok := ParseLevel(c.raw)
		if level != c.level || ok != c.ok {
			t.Fatalf("parse %q: got (%v, %v), want (%v, %v)", c.raw, level, ok, c.level, c.ok)
		}
	}
}
