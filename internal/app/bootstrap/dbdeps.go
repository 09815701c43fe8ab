// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. It is built once
// by ConnectDB and handed to every handler constructor.
type DBDeps struct {
	RailopsMongoClient   *mongo.Client
	RailopsMongoDatabase *mongo.Database
}
