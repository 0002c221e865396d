package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Telegram       TelegramConfig
	Database       DatabaseConfig
	GoogleCalendar GoogleCalendarConfig

	// NLU holds the tunables of the interpretation pipeline.
	NLU NLUConfig
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

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	RateLimitPerMin int
}

type DatabaseConfig struct {
	Path string // SQLite file path
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// NLUConfig tunes the interpretation pipeline. The cutoffs partition the
// difficulty score: score < Low is easy, score < High is medium, everything
// else is hard. Low must not exceed High.
type NLUConfig struct {
	Timezone             string
	DifficultyLowCutoff  int
	DifficultyHighCutoff int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.NLU.Timezone = viper.GetString("nlu.timezone")
	cfg.NLU.DifficultyLowCutoff = viper.GetInt("nlu.difficulty_low")
	cfg.NLU.DifficultyHighCutoff = viper.GetInt("nlu.difficulty_high")
	if cfg.NLU.DifficultyLowCutoff > cfg.NLU.DifficultyHighCutoff {
		return nil, fmt.Errorf("nlu.difficulty_low (%d) must not exceed nlu.difficulty_high (%d)",
			cfg.NLU.DifficultyLowCutoff, cfg.NLU.DifficultyHighCutoff)
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
	viper.SetDefault("telegram.rate_limit_per_min", 60)
	viper.SetDefault("database.path", "data/taskbuddy.db")
	viper.SetDefault("nlu.timezone", "UTC")
	viper.SetDefault("nlu.difficulty_low", 2)
	viper.SetDefault("nlu.difficulty_high", 4)
}
