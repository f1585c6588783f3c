// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cohort implements cohort formation and vote tallying.

Nothing in this package talks to a store. Every function works on records
already loaded by the caller and returns new values without mutating its
inputs.

# Forming Cohorts

	entries := cohort.EligibleEntries(allEntries)
	prospects := cohort.Partition(rng, entries, cohort.DefaultMaxCohortSize)
	voters := cohort.Shuffle(rng, cohort.EligibleVoters(allVoters))
	assignment := cohort.Balance(voters, prospects)
	window := cohort.ReviewWindow(time.Now(), cohort.DefaultCutoffHour)

Partition shuffles the entries and slices them into groups of at most
MaxCohortSize. Each prospect records the owners of its entries; those owners
may not review it.

Balance hands each voter, in order, to the admitting prospect with the fewest
voters so far (ties go to the earlier prospect). A voter who owns an entry in
every prospect ends up in Assignment.Unassigned.

# Tallying

	if err := cohort.ValidateVotes(c, votes); err != nil {
		return err // *ValidationError
	}
	sel, err := cohort.SelectWinners(c.ID, entries, cohort.DefaultMaxWinners)

Validation fails closed: one vote from a key outside the cohort's allow-list
rejects the whole cohort.

SelectWinners orders entries by score (descending) then ID (ascending). The
top entries with a positive score win, up to the limit; everything else loses.
A cohort with no positive score has no winner and returns *NoWinnerError.

# Review Window

The window opens at the cutoff hour today, or tomorrow once that hour has
passed, and closes 23 hours later.

# Randomness

Partition and Shuffle take a *rand.Rand so a fixed seed reproduces the same
cohorts and voter assignments.
*/
package cohort
