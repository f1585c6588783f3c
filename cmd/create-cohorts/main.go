package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/cohortvote/cliparse"
	"github.com/danielhkuo/cohortvote/db"
	"github.com/danielhkuo/cohortvote/jobs"
	"github.com/danielhkuo/cohortvote/progress"
	"github.com/danielhkuo/cohortvote/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Stop between chunks on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	st := store.NewSQL(dbConn, cfg.DatabaseType)
	rep := newReporter(cfg)

	summary, err := jobs.NewCohortJob(st, rep, cfg).Run(ctx)
	if err != nil {
		slog.Error("Cohort creation failed", "error", err, "created", len(summary.CohortIDs))
		dbConn.Close()
		os.Exit(1)
	}

	switch {
	case len(summary.Plan.Cohorts) == 0:
		fmt.Println("No projects need a cohort")
	case !summary.Confirmed:
		fmt.Println("Exiting")
	default:
		fmt.Printf("Created %d new cohort(s)\n", len(summary.CohortIDs))
	}
}

// newReporter draws on the terminal when there is one and logs otherwise.
func newReporter(cfg cliparse.Config) progress.Reporter {
	if cfg.AssumeYes || !progress.IsTerminal(os.Stdout) {
		return progress.NewLog(nil, cfg.AssumeYes)
	}
	return progress.NewTerminal(os.Stdin, os.Stdout)
}
