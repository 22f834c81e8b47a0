package config

import (
	"fmt"
	"strings"

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

	// Scheduling
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
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

type RateLimitConfig struct {
	RequestsPerMin int
}

// SchedulerConfig is the day window the availability resolver works in.
// Hours are wall-clock hours in Timezone.
type SchedulerConfig struct {
	Timezone               string
	DayStartHour           int
	DayEndHour             int
	LateDayHour            int
	FallbackHour           int
	FallbackChecksBookings bool
	// SeedSampleDay fills today with a demo schedule on startup.
	SeedSampleDay bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Enabled reports whether Google Calendar credentials are configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/schedule-assistant/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/schedule-assistant/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Scheduler
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.DayStartHour = v.GetInt("scheduler.day_start_hour")
	cfg.Scheduler.DayEndHour = v.GetInt("scheduler.day_end_hour")
	cfg.Scheduler.LateDayHour = v.GetInt("scheduler.late_day_hour")
	cfg.Scheduler.FallbackHour = v.GetInt("scheduler.fallback_hour")
	cfg.Scheduler.FallbackChecksBookings = v.GetBool("scheduler.fallback_checks_bookings")
	cfg.Scheduler.SeedSampleDay = v.GetBool("scheduler.seed_sample_day")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validateScheduler(cfg.Scheduler); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	// Scheduler defaults: 06:00-22:00 day, tomorrow after 18:00, fallback 09:00
	v.SetDefault("scheduler.timezone", "Asia/Ho_Chi_Minh")
	v.SetDefault("scheduler.day_start_hour", 6)
	v.SetDefault("scheduler.day_end_hour", 22)
	v.SetDefault("scheduler.late_day_hour", 18)
	v.SetDefault("scheduler.fallback_hour", 9)
	v.SetDefault("scheduler.fallback_checks_bookings", false)
	v.SetDefault("scheduler.seed_sample_day", false)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// validateScheduler validates the scheduler day window
func validateScheduler(cfg SchedulerConfig) error {
	if cfg.Timezone == "" {
		return fmt.Errorf("scheduler.timezone is required")
	}
	if cfg.DayStartHour < 0 || cfg.DayEndHour > 24 || cfg.DayStartHour >= cfg.DayEndHour {
		return fmt.Errorf("scheduler: day window %d-%d is invalid", cfg.DayStartHour, cfg.DayEndHour)
	}
	if cfg.LateDayHour < 0 || cfg.LateDayHour > 24 {
		return fmt.Errorf("scheduler: late_day_hour %d out of range", cfg.LateDayHour)
	}
	if cfg.FallbackHour < 0 || cfg.FallbackHour > 23 {
		return fmt.Errorf("scheduler: fallback_hour %d out of range", cfg.FallbackHour)
	}
	return nil
}
