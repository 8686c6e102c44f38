package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "BOXES_"

// LookupFunc resolves an environment variable, os.LookupEnv in production
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from defaults, an optional TOML file, an optional .env file,
// BOXES_* environment variables and finally command-line flags, each layer overriding the previous
// The result is validated
func Load(name string, args []string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	configPath := fset.String("config", "", "path to a TOML config file")
	envPath := fset.String("env", ".env", "path to a dotenv file, skipped when missing")
	width := fset.Int("width", cfg.Width, "playfield width")
	height := fset.Int("height", cfg.Height, "playfield height")
	tps := fset.Int("tps", cfg.TPS, "simulation ticks per second")
	seed := fset.Uint64("seed", 0, "enemy decision seed, 0 seeds from the clock")
	debug := fset.Bool("debug", false, "write debug log to the log directory")
	collisions := fset.Bool("collisions", false, "enemy contact kills the player")
	logDir := fset.String("logdir", cfg.LogDir, "debug log directory")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fset.SetOutput(os.Stderr)
			fset.PrintDefaults()
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, *configPath, err)
		}
	}

	dotenv, err := godotenv.Read(*envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, *envPath, err)
	}
	if err := applyEnv(&cfg, layered(lookup, dotenv)); err != nil {
		return cfg, err
	}

	// Only flags given on the command line override earlier layers
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "tps":
			cfg.TPS = *tps
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "collisions":
			cfg.Collisions = *collisions
		case "logdir":
			cfg.LogDir = *logDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// layered prefers the process environment over values read from the dotenv file
func layered(lookup LookupFunc, dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &cfg.Width},
		{"HEIGHT", &cfg.Height},
		{"TPS", &cfg.TPS},
	}
	for _, e := range ints {
		raw, ok := lookup(EnvPrefix + e.key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, e.key, raw)
		}
		*e.dst = v
	}

	if raw, ok := lookup(EnvPrefix + "SEED"); ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalid, EnvPrefix, raw)
		}
		cfg.Seed = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"DEBUG", &cfg.Debug},
		{"COLLISIONS", &cfg.Collisions},
	}
	for _, e := range bools {
		raw, ok := lookup(EnvPrefix + e.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, e.key, raw)
		}
		*e.dst = v
	}

	if raw, ok := lookup(EnvPrefix + "LOG_DIR"); ok && raw != "" {
		cfg.LogDir = raw
	}
	return nil
}
