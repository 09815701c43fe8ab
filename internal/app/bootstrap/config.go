// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const (
	envPrefix       = "RAILOPS"
	defaultMongoURI = "mongodb://localhost:27017"
)

// legacyMongoURIEnv lists the variables older deployments used for the
// connection string, in lookup order.
var legacyMongoURIEnv = []string{"MONGODB_URI", "MONGO_URI"}

// appConfigKeys defines the configuration keys for railops.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, timeout_read, etc.
//   - Environment variables: RAILOPS_MONGO_URI, RAILOPS_TIMEOUT_READ, etc.
//   - Command-line flags: --mongo_uri, --timeout_read, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: defaultMongoURI, Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "railops", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	// Storage deadlines
	{Name: "timeout_ping", Default: "2s", Desc: "Deadline for MongoDB pings (health, startup)"},
	{Name: "timeout_read", Default: "10s", Desc: "Deadline for list queries"},
	{Name: "timeout_write", Default: "10s", Desc: "Deadline for single inserts and deletes"},
	{Name: "timeout_batch", Default: "60s", Desc: "Deadline for each bulk insert in POST /api/data"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, RAILOPS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
//
// When mongo_uri is left at its default, MONGODB_URI and then MONGO_URI
// are consulted.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	uri, explicit := resolveMongoURI(appValues.String("mongo_uri"), os.LookupEnv)
	if explicit && uri != appValues.String("mongo_uri") {
		logger.Info("using legacy MongoDB URI variable")
	}

	appCfg := AppConfig{
		MongoURI:         uri,
		MongoURIExplicit: explicit,
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TimeoutPing:  appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutRead:  appValues.Duration("timeout_read", 10*time.Second),
		TimeoutWrite: appValues.Duration("timeout_write", 10*time.Second),
		TimeoutBatch: appValues.Duration("timeout_batch", 60*time.Second),
	}

	return coreCfg, appCfg, nil
}

// resolveMongoURI applies the legacy environment fallback. configured is the
// value WAFFLE resolved for mongo_uri. The boolean reports whether the URI
// was supplied by the operator rather than taken from the built-in default.
func resolveMongoURI(configured string, lookup func(string) (string, bool)) (string, bool) {
	if v, ok := lookup(envPrefix + "_MONGO_URI"); ok && v != "" {
		return configured, true
	}
	if configured != "" && configured != defaultMongoURI {
		return configured, true
	}
	for _, name := range legacyMongoURIEnv {
		if v, ok := lookup(name); ok && v != "" {
			return v, true
		}
	}
	if configured == "" {
		return defaultMongoURI, false
	}
	return configured, false
}

// ValidateConfig performs app-specific config validation.
//
// railops validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect. Reachability is not checked here.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize != 0 {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	return nil
}
