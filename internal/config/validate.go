package config

import (
	"fmt"
	"net/mail"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Duplicates.validate(); err != nil {
		return fmt.Errorf("duplicates: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	return nil
}

func (d *DuplicatesConfig) validate() error {
	if d.FuzzyScanLimit < 1 {
		return fmt.Errorf("fuzzy_scan_limit must be >= 1 (got %d)", d.FuzzyScanLimit)
	}
	if d.SimilarityThreshold <= 0 || d.SimilarityThreshold > 100 {
		return fmt.Errorf("similarity_threshold must be in (0, 100] (got %v)", d.SimilarityThreshold)
	}
	if d.MinFuzzyNameLength < 1 {
		return fmt.Errorf("min_fuzzy_name_length must be >= 1 (got %d)", d.MinFuzzyNameLength)
	}
	return nil
}

func (m *MailConfig) validate() error {
	switch m.Provider {
	case MailProviderConsole:
	case MailProviderSendGrid:
		if m.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid_api_key is required for provider %q", m.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", m.Provider)
	}

	if _, err := mail.ParseAddress(m.FromAddress); err != nil {
		return fmt.Errorf("from_address: %w", err)
	}
	if m.BirthdayRecipient != "" {
		if _, err := mail.ParseAddress(m.BirthdayRecipient); err != nil {
			return fmt.Errorf("birthday_recipient: %w", err)
		}
	}
	return nil
}
