package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and returns one error listing every violation
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// ValidateDiscord checks the settings only the Discord bot needs
func (c *Config) ValidateDiscord() error {
	var missing []string
	if c.DiscordToken == "" {
		missing = append(missing, EnvDiscordToken)
	}
	if c.DiscordAppID == "" {
		missing = append(missing, EnvDiscordAppID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Warnings reports settings that load fine but look unsafe
func (c *Config) Warnings() []string {
	var warnings []string
	if c.UsesPostgres() && c.DBPassword == examplePasswordValue {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKeyValue {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" && c.Environment == "prod" {
		warnings = append(warnings, "API_KEY is not set - write endpoints are unauthenticated")
	}
	if !c.UsesPostgres() && c.CatalogSyncInterval > 0 {
		warnings = append(warnings, "CATALOG_SYNC_INTERVAL is ignored with memory storage")
	}
	return warnings
}
