package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the process configuration, read from the environment.
type Settings struct {
	Port   string
	AppEnv string

	DatabaseDriver string // postgres | sqlite
	PostgresURI    string
	SQLitePath     string

	// ProfileID selects the profile shown on the public page; 0 picks the lowest id.
	ProfileID uint

	StorageBackend     string // local | gcs | s3
	MediaRoot          string
	MediaURL           string
	GCSBucket          string
	GCSCredentialsFile string
	GCSPublicRead      bool
	S3Bucket           string
	S3Region           string
	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
	S3PublicURL        string

	RedisAddr    string
	PageCacheTTL time.Duration

	JWTSecret string
	JWTTTL    time.Duration
	JWTIssuer string

	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

func (s Settings) IsProduction() bool { return strings.EqualFold(s.AppEnv, "production") }

// LoadSettings reads the environment. Unset values take their defaults;
// malformed values are an error.
func LoadSettings() (Settings, error) {
	s := Settings{
		Port:               env("PORT", "8080"),
		AppEnv:             env("APP_ENV", "development"),
		DatabaseDriver:     strings.ToLower(env("DATABASE_DRIVER", "postgres")),
		PostgresURI:        os.Getenv("POSTGRES_URI"),
		SQLitePath:         env("SQLITE_PATH", "portfolio.db"),
		StorageBackend:     strings.ToLower(env("STORAGE_BACKEND", "local")),
		MediaRoot:          env("MEDIA_ROOT", "media"),
		MediaURL:           env("MEDIA_URL", "/media/"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Region:           env("S3_REGION", "us-east-1"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		S3AccessKey:        os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:        os.Getenv("S3_SECRET_KEY"),
		S3PublicURL:        os.Getenv("S3_PUBLIC_URL"),
		RedisAddr:          firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		JWTSecret:          os.Getenv("ADMIN_JWT_SECRET"),
		JWTIssuer:          env("ADMIN_JWT_ISSUER", "portfolio"),
		CORSOrigins:        splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:           env("LOG_LEVEL", "info"),
		LogFormat:          env("LOG_FORMAT", "json"),
	}

	var err error
	if v := os.Getenv("PROFILE_ID"); v != "" {
		id, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return s, fmt.Errorf("PROFILE_ID: %w", perr)
		}
		s.ProfileID = uint(id)
	}
	if s.GCSPublicRead, err = boolEnv("GCS_PUBLIC_READ", false); err != nil {
		return s, err
	}
	if s.PageCacheTTL, err = durationEnv("PAGE_CACHE_TTL", 10*time.Minute); err != nil {
		return s, err
	}
	if s.JWTTTL, err = durationEnv("ADMIN_JWT_TTL", 12*time.Hour); err != nil {
		return s, err
	}

	switch s.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return s, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", s.DatabaseDriver)
	}
	switch s.StorageBackend {
	case "local", "gcs", "s3":
	default:
		return s, fmt.Errorf("STORAGE_BACKEND must be local, gcs or s3, got %q", s.StorageBackend)
	}
	return s, nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
