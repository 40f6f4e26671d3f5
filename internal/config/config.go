package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Default values used when the corresponding environment variable is unset.
const (
	DefaultServerAddr    = ":8080"
	DefaultAppName       = "DocChat"
	DefaultStorageDir    = "data"
	DefaultMaxUploadSize = 25 * 1024 * 1024 // 25MB
	DefaultUserName      = "shadcn"
	DefaultUserEmail     = "m@example.com"
	DefaultUserAvatar    = "/avatars/shadcn.svg"
)

// Provider exposes read-only access to application configuration.
// Handlers and modules depend on this interface rather than on *Config.
type Provider interface {
	GetServerAddr() string
	GetAppName() string
	GetSessionSecret() string
	GetStorageBackend() string
	GetStorageDir() string
	GetMaxUploadSize() int64
	GetAllowedMIMETypes() []string
	GetDefaultUserName() string
	GetDefaultUserEmail() string
	GetDefaultUserAvatar() string
	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppName       string
	SessionSecret string

	// StorageBackend selects where uploaded content lives: "disk" or "memory".
	StorageBackend   string
	StorageDir       string
	MaxUploadSize    int64
	AllowedMIMETypes []string

	DefaultUserName   string
	DefaultUserEmail  string
	DefaultUserAvatar string

	// SurrealDB is optional. Upload metadata stays in memory when DBUrl is empty.
	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string
}

var _ Provider = (*Config)(nil)

// New loads configuration from environment variables, reading a .env file first
// when one is present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment without touching .env files.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:        getEnv("SERVER_ADDR", DefaultServerAddr),
		AppName:           getEnv("APP_NAME", DefaultAppName),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		StorageBackend:    getEnv("STORAGE_BACKEND", "disk"),
		StorageDir:        getEnv("STORAGE_DIR", DefaultStorageDir),
		MaxUploadSize:     getEnvInt64("MAX_UPLOAD_SIZE", DefaultMaxUploadSize),
		AllowedMIMETypes:  splitList(getEnv("ALLOWED_MIME_TYPES", "application/pdf")),
		DefaultUserName:   getEnv("DEFAULT_USER_NAME", DefaultUserName),
		DefaultUserEmail:  getEnv("DEFAULT_USER_EMAIL", DefaultUserEmail),
		DefaultUserAvatar: getEnv("DEFAULT_USER_AVATAR", DefaultUserAvatar),
		DBUrl:             os.Getenv("SURREAL_URL"),
		DBNs:              os.Getenv("SURREAL_NS"),
		DBDb:              os.Getenv("SURREAL_DB"),
		DBUser:            os.Getenv("SURREAL_USER"),
		DBPass:            os.Getenv("SURREAL_PASS"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = "insecure-development-session-secret"
	}

	return cfg
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetAppName() string            { return c.AppName }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetStorageBackend() string     { return c.StorageBackend }
func (c *Config) GetStorageDir() string         { return c.StorageDir }
func (c *Config) GetMaxUploadSize() int64       { return c.MaxUploadSize }
func (c *Config) GetAllowedMIMETypes() []string { return c.AllowedMIMETypes }
func (c *Config) GetDefaultUserName() string    { return c.DefaultUserName }
func (c *Config) GetDefaultUserEmail() string   { return c.DefaultUserEmail }
func (c *Config) GetDefaultUserAvatar() string  { return c.DefaultUserAvatar }
func (c *Config) GetDBUrl() string              { return c.DBUrl }
func (c *Config) GetDBNs() string               { return c.DBNs }
func (c *Config) GetDBDb() string               { return c.DBDb }
func (c *Config) GetDBUser() string             { return c.DBUser }
func (c *Config) GetDBPass() string             { return c.DBPass }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		log.Printf("Invalid value %q for %s, using default %d", v, key, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
