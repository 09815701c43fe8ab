package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/railops/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user directly, bypassing the store.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	u := models.User{ID: primitive.NewObjectID(), Name: name, Email: email}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateSectionController inserts a section controller with the given app id.
func (f *Fixtures) CreateSectionController(ctx context.Context, controllerID, name string) models.SectionController {
	f.t.Helper()

	sc := models.SectionController{
		ID:            primitive.NewObjectID(),
		ControllerID:  models.Text(controllerID),
		Name:          models.Text(name),
		Section:       "Test Section",
		ControlOffice: "Test Office",
	}
	if _, err := f.db.Collection("sectioncontrollers").InsertOne(ctx, sc); err != nil {
		f.t.Fatalf("failed to create test section controller: %v", err)
	}
	return sc
}

// CreateStation inserts a station under the given controller id.
func (f *Fixtures) CreateStation(ctx context.Context, code, name, controllerID string) models.Station {
	f.t.Helper()

	st := models.Station{
		ID:                  primitive.NewObjectID(),
		Code:                models.Text(code),
		Name:                models.Text(name),
		SectionControllerID: models.Text(controllerID),
		StationMaster:       models.StationMaster{ID: models.Text("SM-" + code), Name: models.Text("Master of " + name)},
	}
	if _, err := f.db.Collection("stations").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test station: %v", err)
	}
	return st
}

// CreateTrain inserts a train running through route, one stop per station.
func (f *Fixtures) CreateTrain(ctx context.Context, trainNo, name string, route []string) models.Train {
	f.t.Helper()

	tr := models.Train{
		ID:      primitive.NewObjectID(),
		TrainNo: models.Text(trainNo),
		Name:    models.Text(name),
	}
	for _, code := range route {
		tr.Route = append(tr.Route, models.Text(code))
		tr.Schedule = append(tr.Schedule, models.TrainStop{Station: models.Text(code), Arrival: "10:00", Departure: "10:05"})
	}
	tr.Normalize()
	if _, err := f.db.Collection("trains").InsertOne(ctx, tr); err != nil {
		f.t.Fatalf("failed to create test train: %v", err)
	}
	return tr
}

// Count returns the number of documents in a collection.
func (f *Fixtures) Count(ctx context.Context, collection string) int64 {
	f.t.Helper()

	n, err := f.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		f.t.Fatalf("count %s: %v", collection, err)
	}
	return n
}
