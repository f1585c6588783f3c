// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"log/slog"
	"time"
)

// Log reports through slog. It never prompts: Confirm logs the prompt and
// returns the answer fixed at construction.
type Log struct {
	logger    *slog.Logger
	assumeYes bool
}

var _ Reporter = (*Log)(nil)

// NewLog builds a reporter on logger, or slog.Default() when nil.
func NewLog(logger *slog.Logger, assumeYes bool) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger, assumeYes: assumeYes}
}

func (l *Log) Start(msg string) Task {
	return &logTask{l: l, msg: msg, started: time.Now()}
}

func (l *Log) Warn(msg string) {
	l.logger.Warn(msg)
}

func (l *Log) Confirm(prompt string) (bool, error) {
	l.logger.Info("confirmation", "prompt", prompt, "answer", l.assumeYes)
	return l.assumeYes, nil
}

type logTask struct {
	l       *Log
	msg     string
	started time.Time
	done    bool
}

func (k *logTask) Succeed() {
	if k.done {
		return
	}
	k.done = true
	k.l.logger.Info(k.msg, "status", "ok", "elapsed", time.Since(k.started))
}

func (k *logTask) Fail(err error) {
	if k.done {
		return
	}
	k.done = true
	k.l.logger.Error(k.msg, "status", "failed", "error", err)
}
