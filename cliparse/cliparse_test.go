// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets every variable ParseFlags reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DATABASE_URL", "DATABASE_TYPE", "COHORT_MAX_SIZE", "COHORT_MAX_WINNERS",
		"REVIEW_CUTOFF_HOUR", "REVIEW_TIMEZONE", "COHORT_SEED",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("COHORT_MAX_SIZE", "12")
	t.Setenv("COHORT_MAX_WINNERS", "3")
	t.Setenv("REVIEW_CUTOFF_HOUR", "9")
	t.Setenv("REVIEW_TIMEZONE", "UTC")
	t.Setenv("COHORT_SEED", "1234")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected postgres://test, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.MaxCohortSize != 12 || cfg.MaxWinners != 3 || cfg.CutoffHour != 9 {
		t.Errorf("unexpected tuning: %+v", cfg)
	}
	if cfg.Location != time.UTC {
		t.Errorf("expected UTC, got %v", cfg.Location)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.MaxCohortSize != 18 {
		t.Errorf("expected max cohort size 18, got %d", cfg.MaxCohortSize)
	}
	if cfg.MaxWinners != 5 {
		t.Errorf("expected 5 winners, got %d", cfg.MaxWinners)
	}
	if cfg.CutoffHour != 11 {
		t.Errorf("expected cutoff hour 11, got %d", cfg.CutoffHour)
	}
	if cfg.Location != time.Local {
		t.Errorf("expected local time, got %v", cfg.Location)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected clock seed, got %d", cfg.Seed)
	}
	if cfg.AssumeYes {
		t.Error("expected prompts to be asked by default")
	}
}

func TestParseFlags_AssumeYes(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-y", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.AssumeYes {
		t.Error("expected -y to set AssumeYes")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-t", "sqlite", "-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=file:from-env-file.db\nCOHORT_MAX_SIZE=20\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COHORT_MAX_SIZE", "7")

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:from-env-file.db" {
		t.Errorf("expected URL from env file, got %s", cfg.DatabaseURL)
	}
	// Existing environment wins over the file
	if cfg.MaxCohortSize != 7 {
		t.Errorf("expected 7 from environment, got %d", cfg.MaxCohortSize)
	}

	// godotenv sets what it loads; undo it for later tests
	os.Unsetenv("DATABASE_URL")
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{"-d", "file:test.db", "-env", filepath.Join(t.TempDir(), "missing.env")})
	if err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database URL", nil, []string{"-env", ""}},
		{"unknown database type", nil, []string{"-d", "x", "-t", "mysql", "-env", ""}},
		{"cohort size not a number", map[string]string{"COHORT_MAX_SIZE": "big"}, []string{"-d", "x", "-env", ""}},
		{"cohort size zero", map[string]string{"COHORT_MAX_SIZE": "0"}, []string{"-d", "x", "-env", ""}},
		{"cutoff hour out of range", map[string]string{"REVIEW_CUTOFF_HOUR": "24"}, []string{"-d", "x", "-env", ""}},
		{"unknown timezone", map[string]string{"REVIEW_TIMEZONE": "Mars/Olympus"}, []string{"-d", "x", "-env", ""}},
		{"negative seed", map[string]string{"COHORT_SEED": "-1"}, []string{"-d", "x", "-env", ""}},
		{"unknown flag", nil, []string{"-yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
