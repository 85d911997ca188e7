package config

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at startup and shared read-only.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTIssuer string
	// Access tokens and refresh tokens are signed with distinct secrets.
	AccessTokenSecret          string
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	AccessTokenCookieName  string
	RefreshTokenCookieName string
	CookieSameSite         http.SameSite

	RevokeSessionsOnPasswordChange bool

	UploadTempDir      string
	MaxUploadSizeBytes int64

	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PublicBaseURL string

	AMQPURL      string
	AMQPExchange string

	PosthogAPIKey      string
	CORSAllowedOrigins []string
	LoginRateLimit     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_ISSUER", "vidtube-backend")
	v.SetDefault("ACCESS_TOKEN_SECRET", "default_insecure_access_secret_please_change_this")
	v.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "1h")
	v.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "240h")
	v.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	v.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	v.SetDefault("COOKIE_SAMESITE", "none")
	v.SetDefault("REVOKE_SESSIONS_ON_PASSWORD_CHANGE", false)
	v.SetDefault("UPLOAD_TEMP_DIR", "./public/temp")
	v.SetDefault("MAX_UPLOAD_SIZE_BYTES", 10<<20)
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_BUCKET", "vidtube")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "vidtube.accounts")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.AccessTokenSecret = v.GetString("ACCESS_TOKEN_SECRET")
	cfg.RefreshTokenSecret = v.GetString("REFRESH_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must both be set")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	if cfg.IsProduction && strings.HasPrefix(cfg.AccessTokenSecret, "default_insecure") {
		log.Println("Warning: ACCESS_TOKEN_SECRET is using the default insecure value. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.AccessTokenExpiryDuration = parseDurationOr(v, "ACCESS_TOKEN_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = parseDurationOr(v, "REFRESH_TOKEN_EXPIRY_DURATION", 10*24*time.Hour)

	cfg.AccessTokenCookieName = v.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookieName = v.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.CookieSameSite = parseSameSite(v.GetString("COOKIE_SAMESITE"))
	cfg.RevokeSessionsOnPasswordChange = v.GetBool("REVOKE_SESSIONS_ON_PASSWORD_CHANGE")

	cfg.UploadTempDir = v.GetString("UPLOAD_TEMP_DIR")
	cfg.MaxUploadSizeBytes = v.GetInt64("MAX_UPLOAD_SIZE_BYTES")

	cfg.S3AccessKey = v.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = v.GetString("S3_SECRET_KEY")
	cfg.S3Bucket = v.GetString("S3_BUCKET")
	cfg.S3Region = v.GetString("S3_REGION")
	cfg.S3Endpoint = v.GetString("S3_ENDPOINT")
	cfg.S3PublicBaseURL = v.GetString("S3_PUBLIC_BASE_URL")
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		log.Println("Warning: S3_ACCESS_KEY or S3_SECRET_KEY not set. Falling back to the default AWS credential chain.")
	}

	cfg.AMQPURL = v.GetString("AMQP_URL")
	cfg.AMQPExchange = v.GetString("AMQP_EXCHANGE")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}

func parseDurationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func parseSameSite(raw string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "default":
		return http.SameSiteDefaultMode
	default:
		return http.SameSiteNoneMode
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
