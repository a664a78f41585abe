package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/kambari/kambari-agent/pkg/core/model"
)

// Defaults applied when the config file leaves a field unset
const (
	DefaultCooldownDays  = 14
	DefaultHistoryMonths = 3
	DefaultIntervalDays  = 7
	DefaultAnchorRule    = "FREQ=WEEKLY;BYDAY=FR"
	DefaultGeminiModel   = "models/gemini-pro"
	DefaultCountryCode   = "254"
	DefaultAPIKeyEnvVar  = "GEMINI_API_KEY"
)

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the Postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// Roles to fill for every session, in assignment priority order.
	// Defaults to the classic three-role set.
	Roles []string `yaml:"roles,omitempty" validate:"omitempty,min=1,dive,required"`

	// CooldownDays is the minimum gap before a member repeats a role
	CooldownDays int `yaml:"cooldownDays,omitempty" validate:"omitempty,min=1"`

	// HistoryMonths is the fairness lookback window
	HistoryMonths int `yaml:"historyMonths,omitempty" validate:"omitempty,min=1"`

	// IntervalDays is the default gap between sessions (7 = weekly)
	IntervalDays *int `yaml:"intervalDays,omitempty" validate:"omitempty,min=0"`

	// ExcludedWeekdays are days sessions may never fall on
	ExcludedWeekdays []string `yaml:"excludedWeekdays,omitempty" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`

	// SessionAnchorRule anchors a series with no explicit start date to its
	// next occurrence (e.g. FREQ=WEEKLY;BYDAY=FR for "next Friday")
	SessionAnchorRule string `yaml:"sessionAnchorRule,omitempty"`

	// GeminiModel is the Gemini model used for questions
	GeminiModel string `yaml:"geminiModel,omitempty"`

	// GeminiAPIKeyEnv names the environment variable holding the API key
	GeminiAPIKeyEnv string `yaml:"geminiAPIKeyEnv,omitempty"`

	// GmailSender is the From address for reminder emails (optional;
	// reminders fall back to WhatsApp links printed to the console)
	GmailSender string `yaml:"gmailSender,omitempty" validate:"omitempty,email"`

	// CountryCode replaces a leading 0 in phone numbers for wa.me links
	CountryCode string `yaml:"countryCode,omitempty" validate:"omitempty,numeric"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from kambari_config.yaml,
// looking in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix.
// For example, env="test" looks for "kambari_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
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

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the anchor rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.SessionAnchorRule); err != nil {
		return fmt.Errorf("invalid sessionAnchorRule: %w", err)
	}

	if len(cfg.ExcludedWeekdays) >= 7 {
		return fmt.Errorf("excludedWeekdays cannot cover all seven days")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Roles) == 0 {
		for _, r := range model.DefaultRoles {
			cfg.Roles = append(cfg.Roles, string(r))
		}
	}
	if cfg.CooldownDays == 0 {
		cfg.CooldownDays = DefaultCooldownDays
	}
	if cfg.HistoryMonths == 0 {
		cfg.HistoryMonths = DefaultHistoryMonths
	}
	if cfg.IntervalDays == nil {
		interval := DefaultIntervalDays
		cfg.IntervalDays = &interval
	}
	if cfg.SessionAnchorRule == "" {
		cfg.SessionAnchorRule = DefaultAnchorRule
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}
	if cfg.GeminiAPIKeyEnv == "" {
		cfg.GeminiAPIKeyEnv = DefaultAPIKeyEnvVar
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = DefaultCountryCode
	}
}

// RoleList returns the configured roles as model roles in priority order
func (c *Config) RoleList() []model.Role {
	roles := make([]model.Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, model.Role(r))
	}
	return roles
}

// ExcludedWeekdayList resolves the configured weekday names
func (c *Config) ExcludedWeekdayList() []time.Weekday {
	byName := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}
	days := make([]time.Weekday, 0, len(c.ExcludedWeekdays))
	for _, name := range c.ExcludedWeekdays {
		// Names are already validated by the oneof tag
		days = append(days, byName[name])
	}
	return days
}

// findConfigFile searches for the config file in the current directory and
// the user's home directory
func findConfigFile(env string) (string, error) {
	configFileName := "kambari_config.yaml"
	if env != "" {
		configFileName = fmt.Sprintf("kambari_config.%s.yaml", env)
	}

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

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
