package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Resolution engine tuning.
	PricingCacheTTLSeconds int `mapstructure:"PRICING_CACHE_TTL_SECONDS"`
	ViewSessionTTLMinutes  int `mapstructure:"VIEW_SESSION_TTL_MINUTES"`
	GuardDebounceMS        int `mapstructure:"GUARD_DEBOUNCE_MS"`
	CountdownTickMS        int `mapstructure:"COUNTDOWN_TICK_MS"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "massage")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("PRICING_CACHE_TTL_SECONDS", 300)
	v.SetDefault("VIEW_SESSION_TTL_MINUTES", 30)
	v.SetDefault("GUARD_DEBOUNCE_MS", 400)
	v.SetDefault("COUNTDOWN_TICK_MS", 1000)
}

// Load reads configuration through v. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

func (c Config) PricingCacheTTL() time.Duration {
	return time.Duration(c.PricingCacheTTLSeconds) * time.Second
}

func (c Config) ViewSessionTTL() time.Duration {
	return time.Duration(c.ViewSessionTTLMinutes) * time.Minute
}

func (c Config) GuardDebounce() time.Duration {
	return time.Duration(c.GuardDebounceMS) * time.Millisecond
}

func (c Config) CountdownTick() time.Duration {
	return time.Duration(c.CountdownTickMS) * time.Millisecond
}
