// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cohort

import "time"

const (
	// DefaultCutoffHour is the hour of day review windows open.
	DefaultCutoffHour = 11

	// WindowLength stays under a day so one window closes before the next opens.
	WindowLength = 23 * time.Hour
)

// Window is the review period shared by every cohort created in one run.
type Window struct {
	Start time.Time
	End   time.Time
}

// ReviewWindow opens at cutoffHour:00 today in now's location, or tomorrow if
// now is already past that time, and closes WindowLength later.
func ReviewWindow(now time.Time, cutoffHour int) Window {
	if cutoffHour < 0 || cutoffHour > 23 {
		cutoffHour = DefaultCutoffHour
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), cutoffHour, 0, 0, 0, now.Location())
	if now.After(start) {
		start = start.AddDate(0, 0, 1)
	}

	return Window{
		Start: start,
		End:   start.Add(WindowLength),
	}
}
