// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTerminal_Steps(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	if err := Run(term, "Loading cohorts", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("boom")
	n, err := Load(term, "Loading votes", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected zero value, got %d", n)
	}

	term.Warn("Some showcases have no scores")

	want := "✔ Loading cohorts\n✖ Loading votes: boom\n⚠ Some showcases have no scores\n"
	if out.String() != want {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"short yes", "y\n", true},
		{"upper case", "  Y \n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"yes without newline", "yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)

			got, err := term.Confirm("Continue?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Continue? [y/N] ") {
				t.Errorf("prompt not printed: %q", out.String())
			}
		})
	}
}

func TestLoad_ReturnsValue(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out)

	got, err := Load(term, "Counting", func() ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 values, got %d", len(got))
	}
}
