package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvTheme, EnvLayout, EnvLogLevel, predict.BaseURLEnv} {
		t.Setenv(key, "")
	}
}

func noEnvFile(t *testing.T) string {
	t.Helper()
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse("medrec", []string{noEnvFile(t)})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Config{
		Port:       DefaultPort,
		BackendURL: predict.DefaultBaseURL,
		Theme:      form.ThemeLight,
		LogLevel:   zerolog.InfoLevel,
		Output:     "pretty",
	}
	cfg.EnvFile = ""
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestParse_EnvironmentFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvTheme, "Dark")
	t.Setenv(EnvLayout, "/tmp/layout.yaml")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(predict.BaseURLEnv, "http://backend:5000/")

	cfg, err := Parse("medrec", []string{noEnvFile(t)})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != 9090 || cfg.Theme != form.ThemeDark || cfg.LayoutPath != "/tmp/layout.yaml" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.BackendURL != "http://backend:5000" {
		t.Fatalf("expected trimmed backend url, got %q", cfg.BackendURL)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestParse_FlagsWinOverEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvTheme, "dark")

	cfg, err := Parse("medrec", []string{noEnvFile(t), "-port", "7000", "-theme", "eye-care", "-backend", "http://flag:1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != 7000 || cfg.Theme != form.ThemeEyeCare || cfg.BackendURL != "http://flag:1" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParse_LoadsEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvPort)
	t.Cleanup(func() { os.Unsetenv(EnvPort) })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=6060\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Parse("medrec", []string{"-env-file", path})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Port != 6060 {
		t.Fatalf("expected port from env file, got %d", cfg.Port)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad port env", env: map[string]string{EnvPort: "eighty"}},
		{name: "port out of range", args: []string{"-port", "70000"}},
		{name: "unknown theme", args: []string{"-theme", "sepia"}},
		{name: "unknown log level", args: []string{"-log-level", "loud"}},
		{name: "unknown output", args: []string{"-output", "xml"}},
		{name: "unknown flag", args: []string{"-verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			args := append([]string{noEnvFile(t)}, tt.args...)
			if _, err := Parse("medrec", args); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
