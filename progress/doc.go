// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package progress reports job status to the operator and asks for
confirmation before writes.

The jobs only see the Reporter interface:

	cohorts, err := progress.Load(rep, "Loading unprocessed cohorts", func() ([]models.Cohort, error) {
		return st.UnprocessedCohorts(ctx)
	})

Terminal is the implementation used by the binaries. On a TTY each step is
shown while it runs and then replaced by a coloured ✔ or ✖ line; otherwise
only the final line is printed and colours are off.

Log reports through slog for runs without a terminal. It cannot ask, so
Confirm returns the answer it was built with:

	rep := progress.NewLog(nil, cfg.AssumeYes)
*/
package progress
