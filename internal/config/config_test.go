package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv(FileEnv, "")
	os.Unsetenv(FileEnv)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" || cfg.LogFormat != "json" || cfg.DataDir != "data" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.StrictReports || cfg.Seed {
		t.Fatalf("expected boolean defaults false: %+v", cfg)
	}
	if cfg.TracingEnabled() {
		t.Fatalf("tracing should be disabled without an endpoint")
	}
	if cfg.OTelServiceName != "questionnaire-report" {
		t.Fatalf("service name = %q", cfg.OTelServiceName)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("STRICT_REPORTS", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.LogLevel != "debug" || cfg.LogFormat != "console" || cfg.DataDir != "/srv/data" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if !cfg.StrictReports || !cfg.TracingEnabled() {
		t.Fatalf("boolean overrides not applied: %+v", cfg)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := "port: \"7070\"\ninstruments_dir: defs\n"
	if err := os.WriteFile(filepath.Join(dir, "qscore.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InstrumentsDir != "defs" {
		t.Fatalf("config file value not applied: %+v", cfg)
	}
	if cfg.Port != "6060" {
		t.Fatalf("env should win over config file, got port %q", cfg.Port)
	}
}

func TestLoad_FlagsWin(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("DATA_DIR", "from-env")

	v := viper.New()
	v.Set("DATA_DIR", "from-flag")

	cfg, err := LoadWith(v)
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.DataDir != "from-flag" {
		t.Fatalf("DataDir = %q, want from-flag", cfg.DataDir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("LOG_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}
