// internal/app/features/railwaydata/handler.go
package railwaydata

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/data: bulk loading and reading of section
// controllers, stations and trains.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	// Diagnostics adds the call stack and a connectivity hint to GET
	// failures. It is on outside prod.
	Diagnostics bool
	MongoURISet bool
}

func NewHandler(db *mongo.Database, diagnostics, mongoURISet bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		Diagnostics: diagnostics,
		MongoURISet: mongoURISet,
	}
}
