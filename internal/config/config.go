package config

import (
	"time"

	"github.com/spf13/viper"
)

func Load() error {
	// HTTP
	viper.SetDefault("API_ADDR", ":8080")
	viper.SetDefault("DASHBOARD_ADDR", ":3000")
	viper.SetDefault("API_URL", "http://localhost:8080")
	viper.SetDefault("TEMPLATES_DIR", "web/templates")

	// Preferences storage
	viper.SetDefault("PREFS_PATH", "./solarfleet.db")

	// Simulated delays
	viper.SetDefault("CHAT_REPLY_DELAY", "1s")
	viper.SetDefault("INTEGRATION_CONNECT_DELAY", "2s")

	viper.AutomaticEnv()
	return nil
}

func APIAddr() string                 { return viper.GetString("API_ADDR") }
func DashboardAddr() string           { return viper.GetString("DASHBOARD_ADDR") }
func APIURL() string                  { return viper.GetString("API_URL") }
func TemplatesDir() string            { return viper.GetString("TEMPLATES_DIR") }
func PrefsPath() string               { return viper.GetString("PREFS_PATH") }
func ChatReplyDelay() time.Duration   { return viper.GetDuration("CHAT_REPLY_DELAY") }
func IntegrationDelay() time.Duration { return viper.GetDuration("INTEGRATION_CONNECT_DELAY") }
