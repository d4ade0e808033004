// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MissingSettingError reports a required environment variable that was not
// set. Startup aborts on it.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("config: required setting %s is not set", e.Name)
}

// Config holds everything the server needs from the environment.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MongoURI is the document store connection string. Required.
	MongoURI string

	// Database is the database name.
	Database string

	// Collection names, one per entity type.
	UsersCollection     string
	ItemsCollection     string
	GroupsCollection    string
	PurchasesCollection string
	PaymentsCollection  string

	// JWTSecret signs bearer tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration

	// Issuer and Audience are embedded in and verified on every token.
	Issuer   string
	Audience string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present, without overriding real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:                getEnv("ADDR", ":8080"),
		MongoURI:            os.Getenv("MONGO_URI"),
		Database:            getEnv("MONGO_DATABASE", "whobought"),
		UsersCollection:     getEnv("MONGO_USERS_COLLECTION", "users"),
		ItemsCollection:     getEnv("MONGO_ITEMS_COLLECTION", "items"),
		GroupsCollection:    getEnv("MONGO_GROUPS_COLLECTION", "groups"),
		PurchasesCollection: getEnv("MONGO_PURCHASES_COLLECTION", "purchases"),
		PaymentsCollection:  getEnv("MONGO_PAYMENTS_COLLECTION", "payments"),
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:            time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,
		Issuer:              getEnv("JWT_ISSUER", "WhoBoughtApp"),
		Audience:            getEnv("JWT_AUDIENCE", "WhoBoughtUsers"),
	}

	if cfg.MongoURI == "" {
		return nil, &MissingSettingError{Name: "MONGO_URI"}
	}
	if cfg.JWTSecret == "" {
		return nil, &MissingSettingError{Name: "JWT_SECRET_KEY"}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
