package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Duplicates DuplicatesConfig `yaml:"duplicates"`
	Mail       MailConfig       `yaml:"mail"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*" env-description:"comma-separated origins, * for any"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS" env-description:"methods answered to preflight"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type" env-description:"request headers answered to preflight"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true" env-description:"send Access-Control-Allow-Credentials"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400" env-description:"preflight cache lifetime in seconds"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0" env-description:"listen address"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" env-description:"listen port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s" env-description:"maximum time to read a request"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s" env-description:"maximum time to write a response"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s" env-description:"keep-alive idle timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s" env-description:"grace period for in-flight requests"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true" env-description:"PostgreSQL connection string"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25" env-description:"pool size upper bound"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5" env-description:"connections kept open"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h" env-description:"recycle connections after this age"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m" env-description:"close connections idle this long"`
	LogQueries      bool          `yaml:"log_queries"        env:"DATABASE_LOG_QUERIES"        env-default:"false" env-description:"log every statement at debug level"`
}

// AuthConfig holds staff authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true" env-description:"HMAC key for access tokens, at least 32 characters"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"the-bridge" env-description:"iss claim of issued tokens"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h" env-description:"access token lifetime"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12" env-description:"bcrypt work factor for new passwords"`
}

// DuplicatesConfig tunes the duplicate scan.
type DuplicatesConfig struct {
	// FuzzyScanLimit caps how many records (ordered by name) enter the
	// pairwise name/phone comparison.
	FuzzyScanLimit      int     `yaml:"fuzzy_scan_limit"     env:"DUPLICATES_FUZZY_SCAN_LIMIT"     env-default:"200" env-description:"records compared pairwise by name and phone"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"DUPLICATES_SIMILARITY_THRESHOLD" env-default:"85" env-description:"minimum name similarity percentage"`
	MinFuzzyNameLength  int     `yaml:"min_fuzzy_name_length" env:"DUPLICATES_MIN_FUZZY_NAME_LENGTH" env-default:"5" env-description:"shortest normalized name compared fuzzily"`
}

// MailConfig holds outgoing mail settings.
type MailConfig struct {
	Provider          string `yaml:"provider"           env:"MAIL_PROVIDER"           env-default:"console" env-description:"console or sendgrid"`
	SendGridAPIKey    string `yaml:"sendgrid_api_key"   env:"MAIL_SENDGRID_API_KEY" env-description:"SendGrid API key"`
	FromAddress       string `yaml:"from_address"       env:"MAIL_FROM_ADDRESS"       env-default:"no-reply@thebridge.local" env-description:"sender address"`
	FromName          string `yaml:"from_name"          env:"MAIL_FROM_NAME"          env-default:"The Bridge" env-description:"sender display name"`
	BirthdayRecipient string `yaml:"birthday_recipient" env:"MAIL_BIRTHDAY_RECIPIENT" env-description:"default birthday digest recipient"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" env-description:"debug, info, warn or error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`
}

// RateLimitConfig holds per-IP limits for the login endpoint.
type RateLimitConfig struct {
	LoginPerMinute int `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10" env-description:"login attempts per client IP per minute"`
}

// Mail providers.
const (
	MailProviderConsole  = "console"
	MailProviderSendGrid = "sendgrid"
)
