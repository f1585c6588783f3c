package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseType string

	MaxCohortSize int
	MaxWinners    int
	CutoffHour    int
	Location      *time.Location
	Seed          uint64 // 0 seeds from the clock

	AssumeYes bool
}

// ParseFlags loads the env file, parses flags and fills the rest from
// environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("cohortvote", flag.ContinueOnError)

	// Store connection (can be CLI args or env)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&envFile, "env", ".env", "Environment file (ignored if missing)")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Answer yes to confirmation prompts")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "pgx":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	var err error
	if cfg.MaxCohortSize, err = intEnv("COHORT_MAX_SIZE", 18, 1, 1000); err != nil {
		return Config{}, err
	}
	if cfg.MaxWinners, err = intEnv("COHORT_MAX_WINNERS", 5, 1, 1000); err != nil {
		return Config{}, err
	}
	if cfg.CutoffHour, err = intEnv("REVIEW_CUTOFF_HOUR", 11, 0, 23); err != nil {
		return Config{}, err
	}

	cfg.Location = time.Local
	if tz := os.Getenv("REVIEW_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REVIEW_TIMEZONE env variable: %w", err)
		}
		cfg.Location = loc
	}

	if seedStr := os.Getenv("COHORT_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid COHORT_SEED env variable")
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// intEnv reads an integer env variable, falling back to def when unset
func intEnv(name string, def, lo, hi int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s must be between %d and %d", name, lo, hi)
	}
	return n, nil
}
