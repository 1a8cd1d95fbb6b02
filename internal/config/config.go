package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
)

const (
	EnvPort     = "PORT"
	EnvTheme    = "MEDREC_THEME"
	EnvLayout   = "MEDREC_LAYOUT"
	EnvLogLevel = "MEDREC_LOG_LEVEL"

	DefaultPort    = 8080
	DefaultEnvFile = ".env"
)

// Config holds the resolved settings.
type Config struct {
	Port       int
	BackendURL string
	Theme      form.Theme
	LayoutPath string
	LogLevel   zerolog.Level
	Output     string
	EnvFile    string
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Parse reads args for the command called name.
func Parse(name string, args []string) (Config, error) {
	var (
		cfg      Config
		theme    string
		logLevel string
	)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntVar(&cfg.Port, "port", 0, "HTTP port (env PORT)")
	flags.StringVar(&cfg.BackendURL, "backend", "", "prediction backend base URL (env BACKEND_URL)")
	flags.StringVar(&theme, "theme", "", "initial theme: light, dark or eye-care (env MEDREC_THEME)")
	flags.StringVar(&cfg.LayoutPath, "layout", "", "form layout file, bundled layout when empty (env MEDREC_LAYOUT)")
	flags.StringVar(&logLevel, "log-level", "", "log level (env MEDREC_LOG_LEVEL)")
	flags.StringVar(&cfg.Output, "output", "pretty", "CLI output format: pretty or json")
	flags.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if raw := strings.TrimSpace(os.Getenv(EnvPort)); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return Config{}, errors.New("config: invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: port %d out of range", cfg.Port)
	}

	cfg.BackendURL = predict.ResolveBaseURL(cfg.BackendURL)

	if theme == "" {
		theme = os.Getenv(EnvTheme)
	}
	cfg.Theme = form.ThemeLight
	if strings.TrimSpace(theme) != "" {
		parsed, err := form.ParseTheme(theme)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		cfg.Theme = parsed
	}

	if cfg.LayoutPath == "" {
		cfg.LayoutPath = strings.TrimSpace(os.Getenv(EnvLayout))
	}

	if logLevel == "" {
		logLevel = os.Getenv(EnvLogLevel)
	}
	cfg.LogLevel = zerolog.InfoLevel
	if strings.TrimSpace(logLevel) != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(logLevel)))
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		cfg.LogLevel = level
	}

	switch cfg.Output {
	case "pretty", "json":
	default:
		return Config{}, fmt.Errorf("config: unsupported output %q", cfg.Output)
	}

	return cfg, nil
}

// loadEnvFile applies path to the environment. A missing file is not an
// error.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Logger builds the console logger used by the commands.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
}
