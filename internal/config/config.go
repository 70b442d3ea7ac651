package config

import (
	"time"

	"github.com/TTJ-s/qr-annujoom/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Razorpay RazorpayConfig `mapstructure:"razorpay"`
	Mswipe   MswipeConfig   `mapstructure:"mswipe"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Database DatabaseConfig `mapstructure:"database"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// UpstreamConfig points at the campaign backend.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds, applies to every call
}

// TimeoutDuration returns the request timeout for outbound backend calls.
func (u UpstreamConfig) TimeoutDuration() time.Duration {
	return time.Duration(u.Timeout) * time.Second
}

// RazorpayConfig holds the merchant credentials for the checkout widget.
type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

// MswipeConfig toggles the fee-free redirect gateway.
type MswipeConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CheckoutConfig selects the flow variant.
type CheckoutConfig struct {
	RequireContact bool   `mapstructure:"require_contact"`
	Currency       string `mapstructure:"currency"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type TaskConfig struct {
	Interval int `mapstructure:"interval"` // seconds
	// GraceMinutes is how long an order may sit unverified before the
	// reconcile job checks it against the provider.
	GraceMinutes int `mapstructure:"grace_minutes"`
	BatchSize    int `mapstructure:"batch_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, stderr, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

// GetLevel implements the logger.LogConfig interface.
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput implements the logger.LogConfig interface.
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile implements the logger.LogConfig interface.
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/annujoom")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("upstream.base_url", "http://localhost:3005/api/v1")
	viper.SetDefault("upstream.timeout", 10)
	viper.SetDefault("razorpay.key_id", "")
	viper.SetDefault("razorpay.key_secret", "")
	viper.SetDefault("mswipe.enabled", true)
	viper.SetDefault("checkout.require_contact", false)
	viper.SetDefault("checkout.currency", "INR")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "annujoom")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("task.interval", 300)
	viper.SetDefault("task.grace_minutes", 15)
	viper.SetDefault("task.batch_size", 50)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
