package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Sheets SheetsConfig `yaml:"sheets"`
	Auth   AuthConfig   `yaml:"auth"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,If-None-Match"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SheetsConfig holds Google Sheets access settings. The private key is the
// PEM-encoded PKCS#8 key of the service account; "\n" escapes in the env
// value are unfolded during validation.
type SheetsConfig struct {
	SpreadsheetID string        `yaml:"spreadsheet_id" env:"SHEETS_SPREADSHEET_ID" env-required:"true"`
	ClientEmail   string        `yaml:"client_email"   env:"SHEETS_CLIENT_EMAIL"   env-required:"true"`
	PrivateKey    string        `yaml:"private_key"    env:"SHEETS_PRIVATE_KEY"    env-required:"true"`
	ResponseRange string        `yaml:"response_range" env:"SHEETS_RESPONSE_RANGE" env-default:"Réponses au formulaire 1"`
	WhitelistRange string       `yaml:"whitelist_range" env:"SHEETS_WHITELIST_RANGE" env-default:"Whitelist!A:A"`
	Timeout       time.Duration `yaml:"timeout"        env:"SHEETS_TIMEOUT"        env-default:"15s"`
}

// AuthConfig holds the login gate settings. Access uses one shared
// password (stored as a bcrypt hash) plus a per-email whitelist.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"sondage"`
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"720h"`
	PasswordHash   string        `yaml:"password_hash"    env:"AUTH_PASSWORD_HASH"    env-required:"true"`
	LoginRateLimit int           `yaml:"login_rate_limit" env:"AUTH_LOGIN_RATE_LIMIT" env-default:"10"`
}

// CacheConfig selects and configures the snapshot cache backend.
type CacheConfig struct {
	Mode          string        `yaml:"mode"           env:"CACHE_MODE"           env-default:"memory"`
	TTL           time.Duration `yaml:"ttl"            env:"CACHE_TTL"            env-default:"1h"`
	RedisAddr     string        `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string        `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
