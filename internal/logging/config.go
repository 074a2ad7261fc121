package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvPrefix scopes the environment overrides, e.g. TERMPARAM_LOG_LEVEL.
const EnvPrefix = "TERMPARAM"

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger configuration.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Out       io.Writer
}

// envOverrides holds raw values; empty means "not set".
type envOverrides struct {
	Level     string `envconfig:"LOG_LEVEL"`
	Timestamp string `envconfig:"LOG_TIMESTAMP"`
	NoColor   string `envconfig:"LOG_NOCOLOR"`
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global zerolog logger once per process.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := DefaultConfig(profile)
		ApplyEnvOverrides(&cfg)
		log.Logger = New(cfg)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

func DefaultConfig(profile Profile) Config {
	cfg := Config{Out: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
		cfg.NoColor = true
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

// New builds a console logger from cfg without touching global state.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(writer).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func ApplyEnvOverrides(cfg *Config) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return
	}
	if lvl, ok := ParseLevel(env.Level); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(env.Timestamp); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(env.NoColor); ok {
		cfg.NoColor = v
	}
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
