// Package config provides configuration management for the socialpost application.
// It handles loading and validation of configuration values from environment
// variables, with support for defaults and collective error reporting. The
// resulting AppConfig is built once at process start and passed by reference;
// request handlers never read the environment directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DevJWTSecret is the fallback signing secret used when JWT_SECRET is unset.
// It exists so a fresh checkout runs without setup; any real deployment must
// override it.
const DevJWTSecret = "dev-secret-change-me"

// MongoConfig holds document-store connection settings.
type MongoConfig struct {
	// URI is the full connection string, e.g. mongodb://localhost:27017.
	URI string
	// Database is the database name holding the users and posts collections.
	Database string
	// ConnectTimeout bounds the initial connect + ping.
	ConnectTimeout time.Duration
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// TokenDuration is the lifetime of an issued token.
	TokenDuration time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port for the HTTP server, kept as a string for net.Listen addresses.
	Port string
	// ClientOrigin is the allowed cross-origin for browser clients.
	ClientOrigin string
}

// UploadConfig holds media ingest settings.
type UploadConfig struct {
	// Dir is the filesystem directory uploaded images are written to.
	Dir string
	// MaxBytes is the per-file size ceiling.
	MaxBytes int64
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Mongo   *MongoConfig
	Auth    *AuthConfig
	Server  *ServerConfig
	Uploads *UploadConfig
}

// getOptionalEnv returns the value of key, or defaultValue when unset.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt64 returns key parsed as an int64, or defaultValue when
// unset. A malformed value is collected as an error.
func getOptionalEnvInt64(key string, defaultValue int64, errs *[]string) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return value
}

// getOptionalEnvDuration returns key parsed as a time.Duration ("15m",
// "168h"), or defaultValue when unset. A malformed value is collected as an
// error.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return value
}

// LoadConfig creates an AppConfig from environment variables. All parse
// errors are collected and reported together in a single error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	mongoCfg := &MongoConfig{
		URI:            getOptionalEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:       getOptionalEnv("MONGODB_DATABASE", "socialpost"),
		ConnectTimeout: getOptionalEnvDuration("MONGODB_CONNECT_TIMEOUT", 5*time.Second, &errs),
	}

	// The dev fallback secret is a deliberate weak default so local setups
	// work out of the box. Production deployments must set JWT_SECRET.
	authCfg := &AuthConfig{
		JWTSecret:     getOptionalEnv("JWT_SECRET", DevJWTSecret),
		TokenDuration: getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errs), // 7 days
	}

	serverCfg := &ServerConfig{
		Port:         getOptionalEnv("PORT", "4000"),
		ClientOrigin: getOptionalEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	uploadCfg := &UploadConfig{
		Dir:      getOptionalEnv("UPLOAD_DIR", "uploads"),
		MaxBytes: getOptionalEnvInt64("UPLOAD_MAX_BYTES", 5<<20, &errs), // 5 MiB
	}
	if uploadCfg.MaxBytes <= 0 {
		errs = append(errs, fmt.Sprintf("UPLOAD_MAX_BYTES must be positive, got %d", uploadCfg.MaxBytes))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		Mongo:   mongoCfg,
		Auth:    authCfg,
		Server:  serverCfg,
		Uploads: uploadCfg,
	}, nil
}
