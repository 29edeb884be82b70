package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values for the API server.
// Each field corresponds to an environment variable.  Secrets are kept
// as plain strings and must never be logged verbatim.
type Config struct {
	Port               string // HTTP port to listen on (PORT, default 8080)
	MongoURI           string // MongoDB connection string
	MongoDB            string // database name inside the cluster
	FrontendURL        string // allowed CORS origin for the web frontend
	CloudName          string // object storage (Cloudinary) cloud name
	CloudAPIKey        string // object storage API key
	CloudAPISecret     string // object storage API secret
	EmailAPIKey        string // transactional email provider API key
	AccessTokenSecret  string // secret used to sign access JWTs
	RefreshTokenSecret string // secret used to derive refresh token hashes
	PaymentSecretKey   string // payment provider key (optional, card flow)
	AccessTTLMin       int    // access token time-to-live in minutes
	RefreshTTLDays     int    // refresh token time-to-live in days
	BcryptCost         int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The diagnostic
// binary deliberately does NOT use Load: it reads the environment
// leniently and reports absences instead of exiting.
func Load() Config {
	return Config{
		Port:               getenv("PORT", "8080"),
		MongoURI:           must("MONGODB_URI"),
		MongoDB:            getenv("MONGODB_DB", "campusbites"),
		FrontendURL:        must("FRONTEND_URL"),
		CloudName:          must("CLOUD_NAME"),
		CloudAPIKey:        must("API_KEY"),
		CloudAPISecret:     must("API_SECRET_KEY"),
		EmailAPIKey:        must("EMAIL_API_KEY"),
		AccessTokenSecret:  must("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: must("REFRESH_TOKEN_SECRET"),
		PaymentSecretKey:   os.Getenv("PAYMENT_SECRET_KEY"), // optional until card payments ship
		AccessTTLMin:       envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays:     envInt("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:         envInt("BCRYPT_COST", 10),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of key or def when unset/empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
