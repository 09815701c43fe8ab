package trainstore

import (
	"context"

	"github.com/dalemusser/railops/internal/domain/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "trains"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every train. The result is never nil, and neither is any
// train's Route or Schedule.
func (s *Store) List(ctx context.Context) ([]models.Train, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer cur.Close(ctx)

	out := []models.Train{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.WithStack(err)
	}
	if out == nil {
		out = []models.Train{}
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

// InsertMany bulk-inserts trains and returns them with IDs set.
// Route and Schedule order is preserved as sent.
func (s *Store) InsertMany(ctx context.Context, trains []models.Train) ([]models.Train, error) {
	if len(trains) == 0 {
		return trains, nil
	}
	docs := make([]interface{}, len(trains))
	for i := range trains {
		if trains[i].ID.IsZero() {
			trains[i].ID = primitive.NewObjectID()
		}
		trains[i].Normalize()
		docs[i] = trains[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, errors.WithStack(err)
	}
	return trains, nil
}
