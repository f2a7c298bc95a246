package config

import "github.com/spf13/viper"

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	Migrations  bool
	DBDebug     bool
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by main) > default.
func Load() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("database_dsn", "tracker.db")
	v.SetDefault("app_env", "development")
	v.SetDefault("migrations", false)
	v.SetDefault("db_debug", false)
	v.AutomaticEnv()

	return Config{
		Port:        v.GetString("port"),
		DatabaseDSN: v.GetString("database_dsn"),
		Env:         v.GetString("app_env"),
		Migrations:  v.GetBool("migrations"),
		DBDebug:     v.GetBool("db_debug"),
	}
}
