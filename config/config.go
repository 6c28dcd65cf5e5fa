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
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Verification pipeline
	Recognition  RecognitionConfig
	Matcher      MatcherConfig
	Verification VerificationConfig
	Settlement   SettlementConfig
	Storage      StorageConfig

	// Timeline
	Timeline       TimelineConfig
	GoogleCalendar GoogleCalendarConfig

	// Notifications
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin         int
	Burst          int
	AllowedOrigins []string
}

// RecognitionConfig configures the image classification provider.
type RecognitionConfig struct {
	APIKey            string
	SecretKey         string
	TokenURL          string
	ClassifyURL       string
	Timeout           time.Duration
	Threshold         float64
	TokenCacheSize    int
	TokenSafetyMargin time.Duration
	Extra             map[string]string
}

type MatcherConfig struct {
	Policy        string // "any" or "rate"
	RateThreshold float64
	Synonyms      map[string][]string
}

type VerificationConfig struct {
	GraceWindow  time.Duration
	MaxAttempts  int
	TickInterval time.Duration
}

type SettlementConfig struct {
	DefaultBaseReward int
	BonusFactor       float64
	PenaltyFactor     float64
	OpeningBalance    int
}

type StorageConfig struct {
	Driver     string // "memory" or "sqlite"
	SQLitePath string
}

type TimelineConfig struct {
	Timezone            string
	MaxIterations       int
	UnscheduledDuration time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TelegramConfig struct {
	BotToken    string
	ChatID      int64
	SendTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFrom("./config", ".", "/etc/app/")
}

// LoadFrom is Load with explicit search paths.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.AllowedOrigins = splitList(v.GetStringSlice("rate_limit.allowed_origins"))

	// Recognition provider
	cfg.Recognition.APIKey = expandEnvVar(v, v.GetString("recognition.api_key"))
	cfg.Recognition.SecretKey = expandEnvVar(v, v.GetString("recognition.secret_key"))
	cfg.Recognition.TokenURL = v.GetString("recognition.token_url")
	cfg.Recognition.ClassifyURL = v.GetString("recognition.classify_url")
	cfg.Recognition.Timeout = v.GetDuration("recognition.timeout")
	cfg.Recognition.Threshold = v.GetFloat64("recognition.threshold")
	cfg.Recognition.TokenCacheSize = v.GetInt("recognition.token_cache_size")
	cfg.Recognition.TokenSafetyMargin = v.GetDuration("recognition.token_safety_margin")
	cfg.Recognition.Extra = v.GetStringMapString("recognition.extra")

	// Matching
	cfg.Matcher.Policy = v.GetString("matcher.policy")
	cfg.Matcher.RateThreshold = v.GetFloat64("matcher.rate_threshold")
	cfg.Matcher.Synonyms = v.GetStringMapStringSlice("matcher.synonyms")

	cfg.Verification.GraceWindow = v.GetDuration("verification.grace_window")
	cfg.Verification.MaxAttempts = v.GetInt("verification.max_attempts")
	cfg.Verification.TickInterval = v.GetDuration("verification.tick_interval")

	cfg.Settlement.DefaultBaseReward = v.GetInt("settlement.default_base_reward")
	cfg.Settlement.BonusFactor = v.GetFloat64("settlement.bonus_factor")
	cfg.Settlement.PenaltyFactor = v.GetFloat64("settlement.penalty_factor")
	cfg.Settlement.OpeningBalance = v.GetInt("settlement.opening_balance")

	cfg.Storage.Driver = v.GetString("storage.driver")
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")

	// Timeline
	cfg.Timeline.Timezone = v.GetString("timeline.timezone")
	cfg.Timeline.MaxIterations = v.GetInt("timeline.max_iterations")
	cfg.Timeline.UnscheduledDuration = v.GetDuration("timeline.unscheduled_duration")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Notifications
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	cfg.Telegram.SendTimeout = v.GetDuration("telegram.send_timeout")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("recognition.timeout", "15s")
	v.SetDefault("recognition.threshold", 0.5)
	v.SetDefault("recognition.token_cache_size", 64)
	v.SetDefault("recognition.token_safety_margin", "300s")

	// The default match policy is a deployment decision, see DESIGN.md.
	v.SetDefault("matcher.policy", "rate")
	v.SetDefault("matcher.rate_threshold", 0.3)

	v.SetDefault("verification.grace_window", "120s")
	v.SetDefault("verification.max_attempts", 3)
	v.SetDefault("verification.tick_interval", "1s")

	v.SetDefault("settlement.default_base_reward", 10)
	v.SetDefault("settlement.bonus_factor", 1.0)
	v.SetDefault("settlement.penalty_factor", 0.5)
	v.SetDefault("settlement.opening_balance", 0)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.sqlite_path", "data/settlements.db")

	v.SetDefault("timeline.timezone", "Asia/Ho_Chi_Minh")
	v.SetDefault("timeline.max_iterations", 100)
	v.SetDefault("timeline.unscheduled_duration", "30m")

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("telegram.send_timeout", "10s")
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Matcher.Policy) {
	case "any", "rate":
	default:
		return fmt.Errorf("matcher.policy must be \"any\" or \"rate\", got %q", cfg.Matcher.Policy)
	}
	if cfg.Matcher.RateThreshold <= 0 || cfg.Matcher.RateThreshold > 1 {
		return fmt.Errorf("matcher.rate_threshold must be in (0, 1], got %v", cfg.Matcher.RateThreshold)
	}
	if cfg.Verification.GraceWindow <= 0 {
		return fmt.Errorf("verification.grace_window must be positive")
	}
	if cfg.Verification.MaxAttempts <= 0 {
		return fmt.Errorf("verification.max_attempts must be positive")
	}
	if cfg.Verification.TickInterval <= 0 {
		return fmt.Errorf("verification.tick_interval must be positive")
	}
	switch cfg.Storage.Driver {
	case "memory":
	case "sqlite":
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("storage.driver must be \"memory\" or \"sqlite\", got %q", cfg.Storage.Driver)
	}
	if cfg.Settlement.BonusFactor < 0 || cfg.Settlement.PenaltyFactor < 0 {
		return fmt.Errorf("settlement factors must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// splitList accepts both YAML lists and a single comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
