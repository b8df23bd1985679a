package config

import (
	"fmt"
	"strings"
)

var cacheModes = map[string]bool{
	"memory": true,
	"redis":  true,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !strings.HasPrefix(c.Auth.PasswordHash, "$2") {
		return fmt.Errorf("auth.password_hash must be a bcrypt hash")
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if err := c.Sheets.validate(); err != nil {
		return fmt.Errorf("sheets: %w", err)
	}

	if !cacheModes[c.Cache.Mode] {
		return fmt.Errorf("cache.mode must be one of memory, redis (got %q)", c.Cache.Mode)
	}
	if c.Cache.Mode == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required when cache.mode is redis")
	}

	return nil
}

func (s *SheetsConfig) validate() error {
	if s.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is required")
	}
	if s.ClientEmail == "" {
		return fmt.Errorf("client_email is required")
	}

	// Env vars often carry the key with literal "\n" sequences.
	s.PrivateKey = strings.ReplaceAll(s.PrivateKey, `\n`, "\n")
	if !strings.Contains(s.PrivateKey, "PRIVATE KEY") {
		return fmt.Errorf("private_key does not look like a PEM key")
	}

	return nil
}
