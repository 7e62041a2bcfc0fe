package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Icon     IconConfig     `mapstructure:"icon"     validate:"required"`
	Publish  PublishConfig  `mapstructure:"publish"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins is the comma-separated list of origins allowed to call
	// the API from a browser.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig contains all document-store related settings.
type DatabaseConfig struct {
	// URI is the full MongoDB connection string.
	URI string `mapstructure:"uri" validate:"required"`

	// Name is the database holding all collections.
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. Tokens expire after TokenLifetimeMinutes.
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// IconConfig contains settings for the third-party skill-icon service.
type IconConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`
}

// PublishConfig contains settings for the publish-portfolio flow.
type PublishConfig struct {
	// BaseURL is the public address live links are minted under.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}
