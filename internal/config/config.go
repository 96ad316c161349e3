package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	WebDBPath        string
	BlendDBPath      string
	WorkdirSubdir    string
	ReconcileOnStart bool
	CORSAllowOrigin  string
	LogLevel         string
	LogFormat        string
	LogFile          string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set in the environment win. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// EnvFile returns the dotenv file main should load before Load.
func EnvFile() string {
	return getEnv("SG_ENV_FILE", ".env")
}

func Load() *Config {
	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		WebDBPath:        getEnv("SG_WEB_DB", ""),
		BlendDBPath:      getEnv("SG_BLEND_DB", ""),
		WorkdirSubdir:    getEnv("SG_WORKDIR_SUBDIR", "wip"),
		ReconcileOnStart: os.Getenv("SG_RECONCILE_ON_START") == "1",
		CORSAllowOrigin:  getEnv("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

// Validate reports configuration the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.WebDBPath == "" {
		errs = append(errs, errors.New("SG_WEB_DB is required"))
	}
	if c.BlendDBPath == "" {
		errs = append(errs, errors.New("SG_BLEND_DB is required"))
	}
	if c.WorkdirSubdir != "" && !filepath.IsLocal(c.WorkdirSubdir) {
		errs = append(errs, fmt.Errorf("SG_WORKDIR_SUBDIR %q must be a relative path inside SG_BLEND_DB", c.WorkdirSubdir))
	}
	return errors.Join(errs...)
}

// WorkdirRoot is the directory that holds one working directory per asset.
func (c *Config) WorkdirRoot() string {
	return filepath.Join(c.BlendDBPath, c.WorkdirSubdir)
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
