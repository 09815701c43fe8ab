package stationstore

import (
	"context"

	"github.com/dalemusser/railops/internal/domain/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "stations"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every station. The result is never nil.
func (s *Store) List(ctx context.Context) ([]models.Station, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer cur.Close(ctx)

	out := []models.Station{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.WithStack(err)
	}
	if out == nil {
		out = []models.Station{}
	}
	return out, nil
}

// InsertMany bulk-inserts stations and returns them with IDs set.
// SectionControllerID is stored as given; it is not looked up.
func (s *Store) InsertMany(ctx context.Context, stations []models.Station) ([]models.Station, error) {
	if len(stations) == 0 {
		return stations, nil
	}
	docs := make([]interface{}, len(stations))
	for i := range stations {
		if stations[i].ID.IsZero() {
			stations[i].ID = primitive.NewObjectID()
		}
		docs[i] = stations[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, errors.WithStack(err)
	}
	return stations, nil
}
