package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks the loaded configuration and fills derived fields.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.OTPMaxAttempts < 1 {
		return fmt.Errorf("auth.otp_max_attempts must be >= 1 (got %d)", c.Auth.OTPMaxAttempts)
	}
	if c.Auth.OTPSendLimit < 1 {
		return fmt.Errorf("auth.otp_send_limit must be >= 1 (got %d)", c.Auth.OTPSendLimit)
	}

	switch c.Storage.Backend {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required for the s3 backend")
		}
	default:
		return fmt.Errorf("storage.backend must be local or s3 (got %q)", c.Storage.Backend)
	}

	c.AI.Models = ParseList(c.AI.ModelsRaw)
	if len(c.AI.Models) == 0 {
		return fmt.Errorf("ai.models must name at least one model")
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// ParseList splits a comma-separated list, dropping blanks.
func ParseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
