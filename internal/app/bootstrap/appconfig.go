// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings: HTTP port, TLS, log level, env mode.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// MongoURIExplicit is true when the URI came from the environment, a
	// file or a flag rather than the built-in default.
	MongoURIExplicit bool

	// Storage call deadlines (see system/timeouts)
	TimeoutPing  time.Duration
	TimeoutRead  time.Duration
	TimeoutWrite time.Duration
	TimeoutBatch time.Duration
}
