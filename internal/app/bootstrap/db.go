// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/railops/internal/app/system/indexes"
	"github.com/dalemusser/railops/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the Mongo client and database handle.
//
// An unreachable server is not fatal: the failed ping is logged at warn and
// the service starts anyway. The driver reconnects on its own, and data
// routes answer 500 until it does.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB client init failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, orDefault(appCfg.TimeoutPing, timeouts.Ping()))
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("MongoDB not reachable at startup; continuing",
			zap.String("database", appCfg.MongoDatabase),
			zap.Error(err))
	} else {
		logger.Info("connected to MongoDB",
			zap.String("database", appCfg.MongoDatabase),
			zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))
	}

	return DBDeps{
		RailopsMongoClient:   client,
		RailopsMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema sets up the lookup indexes. Failures are logged and do not
// abort startup, so the service still comes up while Mongo is down.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.RailopsMongoDatabase == nil {
		return nil
	}
	ictx, cancel := timeouts.WithTimeout(ctx, orDefault(appCfg.TimeoutBatch, timeouts.Batch()), logger, "ensure indexes")
	defer cancel()
	if err := indexes.EnsureAll(ictx, deps.RailopsMongoDatabase, logger); err != nil {
		logger.Warn("index setup incomplete", zap.Error(err))
	}
	return nil
}

// orDefault runs before Startup installs the configured deadlines.
func orDefault(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
