// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

// Reporter receives step status, warnings and yes/no questions from a job.
type Reporter interface {
	Start(msg string) Task
	Warn(msg string)
	Confirm(prompt string) (bool, error)
}

// Task is one running step.
type Task interface {
	Succeed()
	Fail(err error)
}

// Run wraps fn in a task.
func Run(r Reporter, msg string, fn func() error) error {
	task := r.Start(msg)
	if err := fn(); err != nil {
		task.Fail(err)
		return err
	}
	task.Succeed()
	return nil
}

// Load wraps fn in a task and returns its value.
func Load[T any](r Reporter, msg string, fn func() (T, error)) (T, error) {
	var out T
	err := Run(r, msg, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}
