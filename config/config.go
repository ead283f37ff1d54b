package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Assistant      AssistantConfig
	Store          StoreConfig
	Notification   NotificationConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	LLM LLMConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig controls how commands are interpreted.
type AssistantConfig struct {
	Timezone string
	UserName string
}

const (
	StoreDriverJSON   = "json"
	StoreDriverSQLite = "sqlite"

	SinkLog      = "log"
	SinkTelegram = "telegram"
)

// StoreConfig selects the record backend: "json" keeps one file per
// collection under DataDir, "sqlite" a single database at SQLitePath.
type StoreConfig struct {
	Driver     string
	DataDir    string
	SQLitePath string
}

type NotificationConfig struct {
	PreferencesPath string
	Spacing         time.Duration
	Sink            string // "log" or "telegram"
	IconPath        string
	TaskLead        time.Duration
	AppointmentLead time.Duration
	SweepInterval   time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	ChatID      int64 // receives notifications when the telegram sink is selected
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	MaxClients        int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/butler/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path, or from the default search
// locations when path is empty.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/butler/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.UserName = viper.GetString("assistant.user_name")

	cfg.Store.Driver = viper.GetString("store.driver")
	cfg.Store.DataDir = viper.GetString("store.data_dir")
	cfg.Store.SQLitePath = viper.GetString("store.sqlite_path")

	cfg.Notification.PreferencesPath = viper.GetString("notification.preferences_path")
	cfg.Notification.Spacing = viper.GetDuration("notification.spacing")
	cfg.Notification.Sink = viper.GetString("notification.sink")
	cfg.Notification.IconPath = viper.GetString("notification.icon_path")
	cfg.Notification.TaskLead = viper.GetDuration("notification.task_lead")
	cfg.Notification.AppointmentLead = viper.GetDuration("notification.appointment_lead")
	cfg.Notification.SweepInterval = viper.GetDuration("notification.sweep_interval")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Conversation is optional; the rule-based pipeline works without providers.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	if err := validateStore(&cfg.Store); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.timezone", "Local")
	viper.SetDefault("assistant.user_name", "sir")

	viper.SetDefault("store.driver", StoreDriverJSON)
	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("store.sqlite_path", "data/butler.db")

	viper.SetDefault("notification.preferences_path", "data/preferences.json")
	viper.SetDefault("notification.spacing", "1s")
	viper.SetDefault("notification.sink", SinkLog)
	viper.SetDefault("notification.icon_path", "assets/icon.png")
	viper.SetDefault("notification.task_lead", "1h")
	viper.SetDefault("notification.appointment_lead", "30m")
	viper.SetDefault("notification.sweep_interval", "1m")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 1000)
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

func validateStore(cfg *StoreConfig) error {
	switch cfg.Driver {
	case StoreDriverJSON:
		if cfg.DataDir == "" {
			return fmt.Errorf("store.data_dir is required for the json driver")
		}
	case StoreDriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q (want json or sqlite)", cfg.Driver)
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return 0
}
