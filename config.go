package fireplace

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vaughan0/go-ini"
)

// Config holds the run settings that are not part of a Request.
//
// Values are layered: zero defaults, then the INI file, then the
// environment, then command line flags.
type Config struct {
	// Time reports the solver's run time after the answer.
	Time bool `env:"FIREPLACE_TIME"`
	// Verbose logs details of the run to stderr.
	Verbose bool `env:"FIREPLACE_VERBOSE"`
	// Input is where the puzzle input comes from: "" or "-" for stdin,
	// s3://bucket/key for an S3 object, or a file path.
	Input string `env:"FIREPLACE_INPUT"`
	// Profile, if set, is a file to write an fgprof profile of the solver to.
	Profile string `env:"FIREPLACE_PROFILE"`
}

const configSection = "fireplace"

// ConfigPath returns the INI file LoadConfig reads:
// $FIREPLACE_CONFIG if set, otherwise fireplace.ini in the working directory.
func ConfigPath() (string, error) {
	var loc struct {
		Path string `env:"FIREPLACE_CONFIG" envDefault:"fireplace.ini"`
	}
	if err := env.Parse(&loc); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	return loc.Path, nil
}

// LoadConfig reads the [fireplace] section of the INI file at path (a missing
// file is not an error) and then applies FIREPLACE_* environment variables.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := cfg.loadINI(path); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) loadINI(path string) error {
	f, err := ini.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error loading config (%s): %s", path, err)
	}
	for key, val := range f.Section(configSection) {
		val = strings.TrimSpace(val)
		switch key {
		case "time", "verbose":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("%s: bad value for %s.%s: %q", path, configSection, key, val)
			}
			if key == "time" {
				cfg.Time = b
			} else {
				cfg.Verbose = b
			}
		case "input":
			cfg.Input = val
		case "profile":
			cfg.Profile = val
		default:
			return fmt.Errorf("%s: unknown key %s.%s", path, configSection, key)
		}
	}
	return nil
}

// InputReader returns the InputReader selected by cfg.Input.
// Standard input gets an interactive prompt when it is a terminal.
func (cfg Config) InputReader() (InputReader, error) {
	switch {
	case cfg.Input == "" || cfg.Input == "-":
		if stdinIsTerminal() {
			return TerminalInput(os.Stderr), nil
		}
		return Stdin(), nil
	case strings.HasPrefix(cfg.Input, "s3://"):
		return NewS3Input(cfg.Input)
	}
	return FileInput(cfg.Input), nil
}
