// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Terminal writes step lines to out and reads confirmations from in.
type Terminal struct {
	in   *bufio.Reader
	out  io.Writer
	live bool

	ok   *color.Color
	bad  *color.Color
	warn *color.Color
	dim  *color.Color
}

var _ Reporter = (*Terminal)(nil)

// NewTerminal builds a reporter. Live step lines and colours are enabled only
// when out is a terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:   bufio.NewReader(in),
		out:  out,
		live: IsTerminal(out),
		ok:   color.New(color.FgGreen),
		bad:  color.New(color.FgRed),
		warn: color.New(color.FgYellow),
		dim:  color.New(color.FgHiBlack),
	}

	if t.live {
		for _, c := range []*color.Color{t.ok, t.bad, t.warn, t.dim} {
			c.EnableColor()
		}
	} else {
		for _, c := range []*color.Color{t.ok, t.bad, t.warn, t.dim} {
			c.DisableColor()
		}
	}

	return t
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) Start(msg string) Task {
	if t.live {
		t.dim.Fprintf(t.out, "… %s", msg)
	}
	return &terminalTask{t: t, msg: msg}
}

func (t *Terminal) Warn(msg string) {
	t.clear()
	t.warn.Fprintf(t.out, "⚠ %s\n", msg)
}

// Confirm prints prompt and reads one line. Only "y" or "yes" confirm; an
// empty input or EOF declines.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (t *Terminal) clear() {
	if t.live {
		fmt.Fprint(t.out, "\r\033[K")
	}
}

type terminalTask struct {
	t    *Terminal
	msg  string
	done bool
}

func (k *terminalTask) Succeed() {
	if k.done {
		return
	}
	k.done = true
	k.t.clear()
	k.t.ok.Fprintf(k.t.out, "✔ %s\n", k.msg)
}

func (k *terminalTask) Fail(err error) {
	if k.done {
		return
	}
	k.done = true
	k.t.clear()
	k.t.bad.Fprintf(k.t.out, "✖ %s: %v\n", k.msg, err)
}
