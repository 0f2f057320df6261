package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/InteriMed/Medishift-sub000/pkg/core/gapresolver"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
)

// RuleLimits is the YAML shape of a jurisdiction rule bundle
type RuleLimits struct {
	MaxConsecutiveDays int     `yaml:"maxConsecutiveDays" validate:"required,min=1"`
	MinDailyRestHours  float64 `yaml:"minDailyRestHours" validate:"required,gt=0"`
	MaxWeeklyHours     float64 `yaml:"maxWeeklyHours" validate:"required,gt=0"`
	MaxDailyHours      float64 `yaml:"maxDailyHours" validate:"required,gt=0"`
	MinWeeklyRestHours float64 `yaml:"minWeeklyRestHours" validate:"omitempty,gt=0"`
}

// RuleSet converts the YAML bundle to the engine's value object
func (r RuleLimits) RuleSet() rules.RuleSet {
	return rules.RuleSet{
		MaxConsecutiveDays: r.MaxConsecutiveDays,
		MinDailyRestHours:  r.MinDailyRestHours,
		MaxWeeklyHours:     r.MaxWeeklyHours,
		MaxDailyHours:      r.MaxDailyHours,
		MinWeeklyRestHours: r.MinWeeklyRestHours,
	}
}

// FacilityRuleOverride supplies an alternate rule bundle for one facility
type FacilityRuleOverride struct {
	FacilityID string     `yaml:"facilityId" validate:"required"`
	Rules      RuleLimits `yaml:"rules" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// DefaultRules replaces the Swiss-law defaults when set
	DefaultRules *RuleLimits `yaml:"defaultRules,omitempty"`

	// FacilityRuleOverrides supply per-facility rule bundles
	FacilityRuleOverrides []FacilityRuleOverride `yaml:"facilityRuleOverrides,omitempty" validate:"dive"`

	// Scoring overrides the ranker's default adjustment weights
	Scoring *gapresolver.Weights `yaml:"scoring,omitempty"`

	// MaxConcurrentScans bounds the ranker's candidate fan-out
	MaxConcurrentScans int `yaml:"maxConcurrentScans,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from medishift_config.yaml,
// looking in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct validation over the configuration
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// RulesForFacility resolves the rule set for a facility: the facility's
// override when present, otherwise the configured defaults, otherwise the
// Swiss-law bundle
func (c *Config) RulesForFacility(facilityID string) rules.RuleSet {
	for _, override := range c.FacilityRuleOverrides {
		if override.FacilityID == facilityID {
			return override.Rules.RuleSet()
		}
	}
	if c.DefaultRules != nil {
		return c.DefaultRules.RuleSet()
	}
	return rules.SwissLawDefaults()
}

// ScoringWeights returns the configured ranker weights, falling back to the
// original defaults
func (c *Config) ScoringWeights() gapresolver.Weights {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return gapresolver.DefaultWeights()
}

// findConfigFile searches for medishift_config.yaml in the current directory
// and the home directory
func findConfigFile() (string, error) {
	configFileName := "medishift_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
