// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jobs runs the two batch jobs against a store.

# Tallying

	summary, err := jobs.NewTallyJob(st, rep, cfg).Run(ctx)

For each unprocessed cohort: load votes, validate voter keys, load showcases
with scores, select winners. Results are written only after every cohort
passed, ten per call. An invalid vote or a cohort with no scores aborts the
run with nothing written.

# Forming Cohorts

	summary, err := jobs.NewCohortJob(st, rep, cfg).Run(ctx)

Loads eligible voters and showcases, partitions the showcases, balances the
voters, schedules the review window, and asks the reporter to confirm
before creating the cohorts ten per call. Declining is not an error;
summary.Confirmed is false.

Plan does everything except the confirmation and the writes.

# Re-running

Both jobs start from the store's current state. Processed cohorts are
never tallied again, and showcases placed in a cohort are not picked up
again until that cohort is processed.
*/
package jobs
