package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateConfig checks that the pieces the service cannot run without are
// present and well formed.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.RecordAPIURL == "" {
		errs = append(errs, "record API URL is required (RECORD_API_URL)")
	} else if u, err := url.Parse(cfg.RecordAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("record API URL %q is not a valid absolute URL", cfg.RecordAPIURL))
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, "JWT secret is required (JWT_SECRET)")
	}

	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errs = append(errs, "Redis address is required (REDIS_URL, or REDIS_HOST and REDIS_PORT)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
