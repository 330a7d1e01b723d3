package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Scraper   ScraperConfig
	Scheduler SchedulerConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// ScraperConfig holds scraping-specific configuration
type ScraperConfig struct {
	MaxRetries         int
	TimeoutSeconds     int
	BackoffBaseSeconds int
	AnimalitoSources   []string
	LotterySources     []string
}

// SchedulerConfig holds trigger-schedule configuration. Times are "HH:MM"
// wall-clock strings in the server's location.
type SchedulerConfig struct {
	Enabled           bool
	CatchAllMinutes   int
	AnimalitoTimes    []string
	LotteryTimes      []string
	RunTimeoutMinutes int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", GetEnv("PORT", "4000"))
	viper.SetDefault("Server.AllowedHosts", GetEnvAsSlice("ALLOWED_HOSTS", ",", []string{"localhost:3000"}))
	viper.SetDefault("MongoDB.URI", GetEnv("MONGODB_URI", "mongodb://localhost:27017"))
	viper.SetDefault("MongoDB.Database", GetEnv("MONGODB_DATABASE", "loteplay"))
	viper.SetDefault("Scraper.MaxRetries", GetEnvAsInt("SCRAPER_MAX_RETRIES", 3))
	viper.SetDefault("Scraper.TimeoutSeconds", GetEnvAsInt("SCRAPER_TIMEOUT_SECONDS", 15))
	viper.SetDefault("Scraper.BackoffBaseSeconds", 1)
	viper.SetDefault("Scraper.AnimalitoSources", []string{})
	viper.SetDefault("Scraper.LotterySources", []string{})
	viper.SetDefault("Scheduler.Enabled", GetEnvAsBool("SCHEDULER_ENABLED", true))
	viper.SetDefault("Scheduler.CatchAllMinutes", 5)
	viper.SetDefault("Scheduler.AnimalitoTimes", []string{"09:05", "12:05", "16:05", "19:05"})
	viper.SetDefault("Scheduler.LotteryTimes", []string{"13:10", "16:10", "19:10"})
	viper.SetDefault("Scheduler.RunTimeoutMinutes", 4)
	viper.SetDefault("LogLevel", "info")
}
