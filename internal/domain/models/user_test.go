package models_test

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/railops/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_UnmarshalJSON_KeepsExtraFields(t *testing.T) {
	var u models.User
	body := `{"name":"Asha","email":"asha@example.com","phone":"555-0100"}`
	if err := json.Unmarshal([]byte(body), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if u.Name != "Asha" || u.Email != "asha@example.com" {
		t.Errorf("got name=%q email=%q", u.Name, u.Email)
	}
	if u.Extra["phone"] != "555-0100" {
		t.Errorf("Extra[phone]: got %v", u.Extra["phone"])
	}
	if !u.ID.IsZero() {
		t.Errorf("ID should be unset without _id, got %s", u.ID.Hex())
	}
}

func TestUser_UnmarshalJSON_KeepsValidID(t *testing.T) {
	id := primitive.NewObjectID()
	var u models.User
	if err := json.Unmarshal([]byte(`{"_id":"`+id.Hex()+`","name":"Asha"}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.ID != id {
		t.Errorf("ID: got %s, want %s", u.ID.Hex(), id.Hex())
	}
	if _, ok := u.Extra["_id"]; ok {
		t.Error("_id must not be duplicated into Extra")
	}
}

func TestUser_UnmarshalJSON_RejectsInvalidID(t *testing.T) {
	for _, body := range []string{`{"_id":"not-an-id"}`, `{"_id":42}`} {
		var u models.User
		if err := json.Unmarshal([]byte(body), &u); err == nil {
			t.Errorf("%s: expected error", body)
		}
	}
}

func TestUser_UnmarshalJSON_MissingFieldsAreEmpty(t *testing.T) {
	var u models.User
	if err := json.Unmarshal([]byte(`{}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.Name != "" || u.Email != "" {
		t.Errorf("expected empty name/email, got %q/%q", u.Name, u.Email)
	}
	if u.Extra != nil {
		t.Errorf("expected nil Extra, got %v", u.Extra)
	}
}

func TestUser_UnmarshalJSON_ScalarCoercion(t *testing.T) {
	var u models.User
	if err := json.Unmarshal([]byte(`{"name":42,"email":true}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.Name != "42" {
		t.Errorf("name: got %q, want %q", u.Name, "42")
	}
	if u.Email != "true" {
		t.Errorf("email: got %q, want %q", u.Email, "true")
	}
}

func TestUser_UnmarshalJSON_LargeNumberKeepsDigits(t *testing.T) {
	var u models.User
	if err := json.Unmarshal([]byte(`{"name":9007199254740993}`), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.Name != "9007199254740993" {
		t.Errorf("name: got %q", u.Name)
	}
}

func TestUser_UnmarshalJSON_RejectsObjectName(t *testing.T) {
	var u models.User
	if err := json.Unmarshal([]byte(`{"name":{"first":"A"}}`), &u); err == nil {
		t.Error("expected error for object-valued name")
	}
}

func TestUser_MarshalJSON_FlattensNestedDocuments(t *testing.T) {
	id := primitive.NewObjectID()
	u := models.User{
		ID:    id,
		Name:  "Ravi",
		Email: "ravi@example.com",
		Extra: map[string]interface{}{
			"address": primitive.D{{Key: "city", Value: "Pune"}},
			"tags":    primitive.A{"a", "b"},
		},
	}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got["_id"] != id.Hex() {
		t.Errorf("_id: got %v, want %s", got["_id"], id.Hex())
	}
	addr, ok := got["address"].(map[string]interface{})
	if !ok || addr["city"] != "Pune" {
		t.Errorf("address: got %#v", got["address"])
	}
	tags, ok := got["tags"].([]interface{})
	if !ok || len(tags) != 2 {
		t.Errorf("tags: got %#v", got["tags"])
	}
}

func TestUser_BSONInlinesExtra(t *testing.T) {
	u := models.User{Name: "Meera", Email: "m@example.com", Extra: map[string]interface{}{"dept": "ops"}}

	raw, err := bson.Marshal(u)
	if err != nil {
		t.Fatalf("bson.Marshal failed: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal failed: %v", err)
	}
	if doc["dept"] != "ops" {
		t.Errorf("dept: got %v", doc["dept"])
	}
	if _, ok := doc["_id"]; ok {
		t.Error("zero ID should be omitted")
	}
}

func TestTrain_Normalize(t *testing.T) {
	tr := models.Train{TrainNo: "12951"}
	tr.Normalize()
	if tr.Route == nil || tr.Schedule == nil {
		t.Fatal("expected non-nil Route and Schedule")
	}

	b, _ := json.Marshal(tr)
	var got map[string]interface{}
	_ = json.Unmarshal(b, &got)
	if _, ok := got["route"].([]interface{}); !ok {
		t.Errorf("route rendered as %v, want []", got["route"])
	}
}
