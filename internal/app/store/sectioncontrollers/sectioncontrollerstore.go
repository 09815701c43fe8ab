package sectioncontrollerstore

import (
	"context"

	"github.com/dalemusser/railops/internal/domain/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the MongoDB collection section controllers live in.
const Collection = "sectioncontrollers"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every section controller. The result is never nil.
func (s *Store) List(ctx context.Context) ([]models.SectionController, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer cur.Close(ctx)

	out := []models.SectionController{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.WithStack(err)
	}
	if out == nil {
		out = []models.SectionController{}
	}
	return out, nil
}

// InsertMany bulk-inserts scs in one call and returns them with IDs set.
// A zero-length slice is a no-op. The insert is ordered: it stops at the
// first failing document and earlier documents stay committed.
func (s *Store) InsertMany(ctx context.Context, scs []models.SectionController) ([]models.SectionController, error) {
	if len(scs) == 0 {
		return scs, nil
	}
	docs := make([]interface{}, len(scs))
	for i := range scs {
		if scs[i].ID.IsZero() {
			scs[i].ID = primitive.NewObjectID()
		}
		docs[i] = scs[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, errors.WithStack(err)
	}
	return scs, nil
}
