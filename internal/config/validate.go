package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}

	if c.Verification.Cooldown <= 0 {
		return fmt.Errorf("verification.cooldown must be > 0 (got %s)", c.Verification.Cooldown)
	}
	if c.Verification.DailyLimit <= 0 {
		return fmt.Errorf("verification.daily_limit must be > 0 (got %d)", c.Verification.DailyLimit)
	}
	// The daily quota counts codes of the current day.
	if c.Verification.RetentionDays < 2 {
		return fmt.Errorf("verification.retention_days must be >= 2 (got %d)", c.Verification.RetentionDays)
	}

	if c.RateLimit.CodeRequestsPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit values must be > 0")
	}

	if err := c.Calendar.load(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}

	return nil
}

func (c *CalendarConfig) load() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc
	return nil
}
