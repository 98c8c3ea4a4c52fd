// Package config loads and saves nestplan configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
)

// Environment overrides, applied after the config file.
const (
	EnvIncome         = "NESTPLAN_INCOME"
	EnvSavingsPercent = "NESTPLAN_SAVINGS_PERCENT"
	EnvAnnualReturn   = "NESTPLAN_ANNUAL_RETURN"
	EnvHorizonYears   = "NESTPLAN_HORIZON_YEARS"
)

// Config holds all nestplan configuration.
type Config struct {
	Plan       PlanConfig       `toml:"plan"`
	Allocation AllocationConfig `toml:"allocation"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
	Serve      ServeConfig      `toml:"serve"`
}

// PlanConfig holds the default plan inputs.
type PlanConfig struct {
	Income         float64 `toml:"income"`
	SavingsPercent float64 `toml:"savings_percent"`
	AnnualReturn   float64 `toml:"annual_return"`
	HorizonYears   int     `toml:"horizon_years"`
}

// AllocationConfig holds the fixed split percentages (0-100).
type AllocationConfig struct {
	EssentialsPct float64 `toml:"essentials_pct"`
	BillsPct      float64 `toml:"bills_pct"`
	InsurancePct  float64 `toml:"insurance_pct"`
	EmergencyPct  float64 `toml:"emergency_pct"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig holds report export settings.
type ExportConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// ServeConfig holds plan service settings.
type ServeConfig struct {
	Addr        string `toml:"addr"`
	IntervalSec int    `toml:"interval_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Plan: PlanConfig{
			Income:         DefaultLimits.DefaultIncome,
			SavingsPercent: DefaultLimits.DefaultSavings,
			AnnualReturn:   0.10,
			HorizonYears:   5,
		},
		Allocation: AllocationConfig{
			EssentialsPct: planner.EssentialsShare * 100,
			BillsPct:      planner.BillsShare * 100,
			InsurancePct:  planner.InsuranceShare * 100,
			EmergencyPct:  planner.EmergencyShare * 100,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Serve: ServeConfig{
			Addr:        "127.0.0.1:8788",
			IntervalSec: 10,
		},
	}
}

// Splits converts the configured percentages into planner fractions.
func (a AllocationConfig) Splits() planner.Splits {
	return planner.Splits{
		Essentials: a.EssentialsPct / 100,
		Bills:      a.BillsPct / 100,
		Insurance:  a.InsurancePct / 100,
		Emergency:  a.EmergencyPct / 100,
	}
}

// Input returns the configured default plan input.
func (p PlanConfig) Input() model.PlanInput {
	return model.PlanInput{
		Income:         p.Income,
		SavingsPercent: p.SavingsPercent,
		AnnualReturn:   p.AnnualReturn,
		HorizonYears:   p.HorizonYears,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nestplan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache/state directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "nestplan")
}

// ExportDir returns the configured export directory, defaulting to the
// working directory.
func (c Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return "."
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides (including any .env in the working directory).
func Load() (Config, error) {
	cfg, err := LoadSaved()
	if err != nil {
		return cfg, err
	}
	return WithEnv(cfg)
}

// LoadSaved reads only the config file. Edits that get written back start
// from this so environment overrides never end up in the file.
func LoadSaved() (Config, error) {
	return LoadFile(Path())
}

// WithEnv returns cfg with the environment overrides applied.
func WithEnv(cfg Config) (Config, error) {
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads one config file without environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvIncome, &cfg.Plan.Income},
		{EnvSavingsPercent, &cfg.Plan.SavingsPercent},
		{EnvAnnualReturn, &cfg.Plan.AnnualReturn},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := os.Getenv(EnvHorizonYears); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvHorizonYears, err)
		}
		cfg.Plan.HorizonYears = n
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
