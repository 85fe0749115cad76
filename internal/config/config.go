package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	API       APIConfig       `yaml:"api"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// APIConfig contains marketplace API client settings
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ServerConfig contains stub API server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SchedulerConfig contains cron specs for background refresh jobs
type SchedulerConfig struct {
	CartRefresh       string `yaml:"cart_refresh"`
	CouponRefresh     string `yaml:"coupon_refresh"`
	CouponExpirySweep string `yaml:"coupon_expiry_sweep"`
}

// Load reads configuration from a yaml file, then applies environment
// overrides. A .env file next to the working directory is honored when
// present (RENTKART_API_BASE_URL, RENTKART_SERVER_PORT, RENTKART_LOG_LEVEL).
func Load(path string) (*Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 15,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Scheduler: SchedulerConfig{
			CartRefresh:       "0 */5 * * * *",  // every 5 minutes
			CouponRefresh:     "0 */15 * * * *", // every 15 minutes
			CouponExpirySweep: "0 0 * * * *",    // hourly
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RENTKART_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("RENTKART_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RENTKART_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// GetServerAddress returns the stub server's listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
