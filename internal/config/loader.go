package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable that points at the YAML config file.
const PathEnv = "CONFIG_PATH"

const defaultPath = "./config.yaml"

// Load builds the configuration from the YAML file named by CONFIG_PATH
// (./config.yaml when unset) overlaid with environment variables, then
// validates it. A missing default file is not an error; a missing explicit
// one is.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv(PathEnv)
	if !explicit || path == "" {
		path, explicit = defaultPath, false
	}

	cfg, err := loadFile(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}

// Usage returns a flag.Usage replacement that prints the command's flags
// followed by every environment variable the configuration reads.
func Usage(w io.Writer, flags *flag.FlagSet) func() {
	header := fmt.Sprintf("Usage of %s:", flags.Name())
	return cleanenv.FUsage(w, &Config{}, &header, func() {
		flags.SetOutput(w)
		flags.PrintDefaults()
		fmt.Fprintf(w, "\n%s overrides the YAML file path (default %s).\n", PathEnv, defaultPath)
	})
}
