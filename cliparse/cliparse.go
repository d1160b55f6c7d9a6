package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	ModelURL     string
	Threshold    float64
	PublicURL    string
}

// DriverName maps the configured database type to its database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("diarisk", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Model endpoint and decision threshold
	fs.StringVar(&cfg.ModelURL, "m", "", "Prediction endpoint URL")
	fs.Float64Var(&cfg.Threshold, "threshold", 0, "Decision threshold for the high-risk class")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Public base URL for report links")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "file:diarisk.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	// Model endpoint - MUST be provided
	if cfg.ModelURL == "" {
		cfg.ModelURL = os.Getenv("MODEL_URL")
	}
	if cfg.ModelURL == "" {
		return Config{}, errors.New("model endpoint URL required (use -m or MODEL_URL env)")
	}

	if cfg.Threshold == 0 {
		if thresholdStr := os.Getenv("THRESHOLD"); thresholdStr != "" {
			threshold, err := strconv.ParseFloat(thresholdStr, 64)
			if err != nil {
				return Config{}, errors.New("invalid THRESHOLD env variable")
			}
			cfg.Threshold = threshold
		} else {
			cfg.Threshold = 0.502 // tuned on the model's validation split
		}
	}
	if cfg.Threshold <= 0 || cfg.Threshold >= 1 {
		return Config{}, errors.New("threshold must be between 0 and 1 exclusive")
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = os.Getenv("PUBLIC_URL")
	}

	return cfg, nil
}
