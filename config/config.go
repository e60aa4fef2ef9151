package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Housekeeping HousekeepingConfig `yaml:"housekeeping"`
	Seed         SeedConfig         `yaml:"seed"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// HousekeepingConfig holds the per-event cleaning rates used by the
// staffing estimator. All values are minutes.
type HousekeepingConfig struct {
	CheckoutCleanMin float64 `yaml:"checkout_clean_min"`
	StayoverCleanMin float64 `yaml:"stayover_clean_min"`
	CheckinPrepMin   float64 `yaml:"checkin_prep_min"`
	StaffShiftMin    float64 `yaml:"staff_shift_min"`
}

// SeedConfig controls the fixture loader run at startup.
type SeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	if cfg.Housekeeping.CheckoutCleanMin <= 0 {
		cfg.Housekeeping.CheckoutCleanMin = 60
	}
	if cfg.Housekeeping.StayoverCleanMin <= 0 {
		cfg.Housekeeping.StayoverCleanMin = 20
	}
	if cfg.Housekeeping.CheckinPrepMin <= 0 {
		cfg.Housekeeping.CheckinPrepMin = 10
	}
	if cfg.Housekeeping.StaffShiftMin <= 0 {
		cfg.Housekeeping.StaffShiftMin = 480
	}
}
