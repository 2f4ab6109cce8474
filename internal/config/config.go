package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	AdminPassword                 string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	EventTZOffsetMinutes          int    `mapstructure:"EVENT_TZ_OFFSET_MINUTES"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	FrontendURL                   string `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "satram.db")
	// Event runs on IST wall-clock time regardless of where the server or
	// viewer is. 330 minutes = UTC+5:30.
	viper.SetDefault("EVENT_TZ_OFFSET_MINUTES", 330)
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("EVENT_TZ_OFFSET_MINUTES")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("unable to decode config")
	}

	return &config
}
