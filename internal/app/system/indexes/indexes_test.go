package indexes_test

import (
	"testing"

	"github.com/dalemusser/railops/internal/app/system/indexes"
	"github.com/dalemusser/railops/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesLookupIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	want := map[string][]string{
		"users":              {"idx_users_email"},
		"sectioncontrollers": {"idx_sc_id"},
		"stations":           {"idx_stations_code", "idx_stations_scid"},
		"trains":             {"idx_trains_no"},
	}
	for coll, names := range want {
		cur, err := db.Collection(coll).Indexes().List(ctx)
		if err != nil {
			t.Fatalf("%s: list indexes failed: %v", coll, err)
		}
		found := map[string]bool{}
		for cur.Next(ctx) {
			var idx bson.M
			if err := cur.Decode(&idx); err != nil {
				t.Fatalf("%s: decode index: %v", coll, err)
			}
			name, _ := idx["name"].(string)
			found[name] = true
			if u, ok := idx["unique"].(bool); ok && u && name != "_id_" {
				t.Errorf("%s: index %s must not be unique", coll, name)
			}
		}
		cur.Close(ctx)
		for _, n := range names {
			if !found[n] {
				t.Errorf("%s: missing index %s", coll, n)
			}
		}
	}
}

func TestEnsureAll_DuplicateValuesStillInsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection("stations")
	for i := 0; i < 2; i++ {
		if _, err := coll.InsertOne(ctx, bson.M{"_id": primitive.NewObjectID(), "code": "NDLS"}); err != nil {
			t.Fatalf("insert #%d with duplicate code failed: %v", i, err)
		}
	}
}

func TestEnsureAll_ReusesIndexUnderOtherName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("trains").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "train_no", Value: 1}},
		Options: options.Index().SetName("legacy_train_no"),
	})
	if err != nil {
		t.Fatalf("create legacy index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}
