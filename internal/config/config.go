package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultAllowedOrigins are the front-end origins allowed to call /api/*.
var DefaultAllowedOrigins = []string{
	"https://ammica.netlify.app",
	"https://67c4b0d1068a0639edffac27--ammica.netlify.app",
	"http://localhost:3000",
}

var envBindings = map[string]string{
	"server.port":                  "PORT",
	"server.read_timeout":          "SERVER_READ_TIMEOUT",
	"server.write_timeout":         "SERVER_WRITE_TIMEOUT",
	"server.idle_timeout":          "SERVER_IDLE_TIMEOUT",
	"server.request_timeout":       "SERVER_REQUEST_TIMEOUT",
	"server.shutdown_timeout":      "SERVER_SHUTDOWN_TIMEOUT",
	"cors.allowed_origins":         "CORS_ALLOWED_ORIGINS",
	"log.level":                    "LOG_LEVEL",
	"log.format":                   "LOG_FORMAT",
	"database.driver":              "DATABASE_DRIVER",
	"database.url":                 "DATABASE_URL",
	"database.host":                "DATABASE_HOST",
	"database.port":                "DATABASE_PORT",
	"database.user":                "DATABASE_USER",
	"database.password":            "DATABASE_PASSWORD",
	"database.name":                "DATABASE_NAME",
	"database.ssl_mode":            "DATABASE_SSL_MODE",
	"database.path":                "DATABASE_PATH",
	"database.max_open_conns":      "DATABASE_MAX_OPEN_CONNS",
	"database.max_idle_conns":      "DATABASE_MAX_IDLE_CONNS",
	"database.conn_max_lifetime":   "DATABASE_CONN_MAX_LIFETIME",
	"database.connect_retries":     "DATABASE_CONNECT_RETRIES",
	"database.connect_retry_delay": "DATABASE_CONNECT_RETRY_DELAY",
	"database.auto_migrate":        "DATABASE_AUTO_MIGRATE",
}

// Init reads .env (if present) and binds environment variables to config
// keys. Environment variables override the file.
func Init() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	for key, env := range envBindings {
		viper.BindEnv(key, env)
	}

	if err := viper.ReadInConfig(); err != nil {
		logrus.Infof("Config file not found, using environment and defaults: %v", err)
	}
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

func LoadServerConfig() *ServerConfig {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.request_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 30*time.Second)
	viper.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)

	return &ServerConfig{
		Port:            viper.GetString("server.port"),
		ReadTimeout:     viper.GetDuration("server.read_timeout"),
		WriteTimeout:    viper.GetDuration("server.write_timeout"),
		IdleTimeout:     viper.GetDuration("server.idle_timeout"),
		RequestTimeout:  viper.GetDuration("server.request_timeout"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		AllowedOrigins:  splitList(viper.GetStringSlice("cors.allowed_origins")),
	}
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadLogConfig() *LogConfig {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	return &LogConfig{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}
}

// splitList accepts both a real list and a single comma separated value,
// which is what an environment variable yields.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
