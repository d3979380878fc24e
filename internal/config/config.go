// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Backend names accepted in [Storage.Backend].
const (
	BackendMemory  = "memory"
	BackendMongoDB = "mongodb"
)

// StructuredConfig is the top-level configuration container for the
// portfolio-cms server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in fallback defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the admin credentials the login endpoint compares against.
	App App

	// Storage holds backend selection and MongoDB connection settings.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Telegram holds the contact-notification bot settings.
	// Notification is disabled when the token or chat id is empty.
	Telegram Telegram `envPrefix:"TELEGRAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the configured admin credentials. The comparison performed at
// login is a plain equality; no hashing is applied anywhere.
type App struct {
	// AdminUsername is the login the admin panel authenticates with.
	// Env: ADMIN_USERNAME. Fallback: "admin".
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the plain-text password the login endpoint
	// compares against.
	// Env: ADMIN_PASSWORD. Fallback: "admin123".
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Storage selects and configures the persistence backend.
type Storage struct {
	// Backend names the repository implementation to run with:
	// "memory" (seeded development store) or "mongodb".
	// Env: STORAGE_BACKEND. Fallback: "memory".
	Backend string `env:"STORAGE_BACKEND"`

	// MongoURI is the MongoDB connection string.
	// Env: MONGODB_URI. Fallback: "mongodb://localhost:27017/space-portfolio".
	MongoURI string `env:"MONGODB_URI"`

	// MongoDatabase is the database holding the six CMS collections.
	// Env: MONGODB_DATABASE. Fallback: "space-portfolio".
	MongoDatabase string `env:"MONGODB_DATABASE"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS. Fallback: "localhost:8080".
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every storage call made on behalf of a single
	// request; a timeout surfaces as a store fault (HTTP 500).
	// Env: SERVER_REQUEST_TIMEOUT. Fallback: "15s".
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Telegram holds the Bot API settings used to notify the admin chat about
// new contact messages.
type Telegram struct {
	// BotToken is the Telegram Bot API token.
	// Env: TELEGRAM_BOT_TOKEN.
	BotToken string `env:"BOT_TOKEN"`

	// ChatID is the chat the notification is delivered to.
	// Env: TELEGRAM_CHAT_ID.
	ChatID string `env:"CHAT_ID"`

	// RequestTimeout bounds a single Bot API call.
	// Env: TELEGRAM_REQUEST_TIMEOUT. Fallback: "10s".
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources only fill fields still zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Fallback defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
