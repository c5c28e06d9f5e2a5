package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

// ErrMissingEnv is returned when a required environment variable is empty
var ErrMissingEnv = errors.New("missing required environment variable")

type Config struct {
	Platform           string
	BotToken           string
	ChannelID          string
	RoleID             string
	SlackSigningSecret string
	Timezone           string
	Location           *time.Location
	PollInterval       time.Duration
	ScheduleFile       string
	DatabasePath       string
	Port               string
	CommandPrefix      string
	GameName           string
	LogLevel           string
}

// Load reads the configuration from the environment. Any error is fatal for
// the caller: the bot must not start with a partial configuration.
func Load() (*Config, error) {
	cfg := &Config{
		Platform:           strings.ToLower(getEnv("CHAT_PLATFORM", PlatformDiscord)),
		ChannelID:          getEnv("CHANNEL_ID", ""),
		RoleID:             getEnv("ROLE_ID", getEnv("RIZE_ROLE_ID", "")),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Timezone:           getEnv("TIMEZONE", domain.DefaultTimezone),
		ScheduleFile:       getEnv("SCHEDULE_FILE", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./reminders.db"),
		Port:               getEnv("PORT", "8080"),
		CommandPrefix:      getEnv("COMMAND_PREFIX", "!"),
		GameName:           getEnv("GAME_NAME", "Rise Online"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.Platform {
	case PlatformDiscord:
		cfg.BotToken = getEnv("BOT_TOKEN", getEnv("DISCORD_TOKEN", ""))
	case PlatformSlack:
		cfg.BotToken = getEnv("BOT_TOKEN", getEnv("SLACK_BOT_TOKEN", ""))
	default:
		return nil, fmt.Errorf("unsupported CHAT_PLATFORM %q", cfg.Platform)
	}

	required := []struct{ key, value string }{
		{"BOT_TOKEN", cfg.BotToken},
		{"CHANNEL_ID", cfg.ChannelID},
		{"ROLE_ID", cfg.RoleID},
	}
	if cfg.Platform == PlatformSlack {
		required = append(required, struct{ key, value string }{"SLACK_SIGNING_SECRET", cfg.SlackSigningSecret})
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingEnv, r.key)
		}
	}

	loc, err := LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	interval, err := parsePollInterval(getEnv("POLL_INTERVAL", ""))
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = interval

	return cfg, nil
}

// LoadLocation resolves the IANA zone all scheduling is pinned to.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func parsePollInterval(value string) (time.Duration, error) {
	if value == "" {
		return domain.DefaultPollInterval, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid POLL_INTERVAL %q: %w", value, err)
	}
	if d < domain.MinPollInterval || d > domain.MaxPollInterval {
		return 0, fmt.Errorf("POLL_INTERVAL must be between %s and %s, got %s",
			domain.MinPollInterval, domain.MaxPollInterval, d)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
