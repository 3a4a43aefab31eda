package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string

	// Log Format: json, text
	Format string

	// Log Output: file, stdout, both
	Output string

	// Log Rotation
	MaxSize    int  // MB
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ lại
	Compress   bool // Nén file cũ

	// Log Paths
	LogPath   string
	AppFile   string
	AuditFile string
	ErrorFile string
}

// DefaultConfig trả về cấu hình mặc định, điều chỉnh theo GO_ENV
// và cho phép override từng giá trị qua environment variables.
func DefaultConfig() *LogConfig {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	cfg := &LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "both",
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   true,
		LogPath:    "./logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
	}

	// Development dùng text format và log chi tiết hơn
	if env == "development" {
		cfg.Level = "debug"
		cfg.Format = "text"
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		cfg.Output = strings.ToLower(output)
	}
	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		cfg.LogPath = logPath
	}
	if maxSizeStr := os.Getenv("LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			cfg.MaxSize = maxSize
		}
	}
	if maxAgeStr := os.Getenv("LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			cfg.MaxAge = maxAge
		}
	}
	if compressStr := os.Getenv("LOG_COMPRESS"); compressStr != "" {
		if compress, err := strconv.ParseBool(compressStr); err == nil {
			cfg.Compress = compress
		}
	}

	return cfg
}
