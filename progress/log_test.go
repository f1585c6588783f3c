// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLog(assumeYes bool) (*Log, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewLog(logger, assumeYes), &buf
}

func TestLog_Steps(t *testing.T) {
	rep, buf := newTestLog(false)

	if err := Run(rep, "Loading cohorts", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if err := Run(rep, "Loading votes", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	rep.Warn("Some showcases have no scores")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d:\n%s", len(lines), buf.String())
	}

	checks := []struct {
		line  string
		parts []string
	}{
		{lines[0], []string{"level=INFO", `msg="Loading cohorts"`, "status=ok"}},
		{lines[1], []string{"level=ERROR", `msg="Loading votes"`, "status=failed", "error=boom"}},
		{lines[2], []string{"level=WARN", `msg="Some showcases have no scores"`}},
	}
	for _, c := range checks {
		for _, part := range c.parts {
			if !strings.Contains(c.line, part) {
				t.Errorf("expected %q in %q", part, c.line)
			}
		}
	}
}

func TestLog_TaskReportsOnce(t *testing.T) {
	rep, buf := newTestLog(false)

	task := rep.Start("Creating chunk 1 of 1")
	task.Succeed()
	task.Fail(errors.New("late"))

	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("expected 1 log line, got %d:\n%s", n, buf.String())
	}
}

func TestLog_Confirm(t *testing.T) {
	for _, want := range []bool{false, true} {
		rep, buf := newTestLog(want)

		got, err := rep.Confirm("About to create 2 cohorts.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Confirm() = %v, want %v", got, want)
		}
		if !strings.Contains(buf.String(), "About to create 2 cohorts.") {
			t.Errorf("expected prompt in log, got %q", buf.String())
		}
	}
}

func TestNewLog_DefaultLogger(t *testing.T) {
	if NewLog(nil, false).logger == nil {
		t.Error("expected default logger")
	}
}
