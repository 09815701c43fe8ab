// internal/domain/models/user.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a generic user record.
//
// NOTE:
//   - Nothing is unique; two users may share an email.
//   - Fields other than name/email sent by a client are kept in Extra and
//     stored inline on the same document, so they round-trip unchanged.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Name  string                 `bson:"name"`
	Email string                 `bson:"email"`
	Extra map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens Extra next to the declared fields.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Extra)+3)
	for k, v := range u.Extra {
		out[k] = Plain(v)
	}
	out["_id"] = u.ID
	out["name"] = u.Name
	out["email"] = u.Email
	return json.Marshal(out)
}

// UnmarshalJSON reads _id, name and email and keeps every other key in
// Extra. A client-supplied _id must be a 24-character hex ObjectID; when it
// is absent the store assigns one.
func (u *User) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	id, err := objectIDField(raw, "_id")
	if err != nil {
		return err
	}
	name, err := textField(raw, "name")
	if err != nil {
		return err
	}
	email, err := textField(raw, "email")
	if err != nil {
		return err
	}
	delete(raw, "_id")
	delete(raw, "name")
	delete(raw, "email")

	u.ID = id
	u.Name = name
	u.Email = email
	u.Extra = nil
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}

// textField coerces a scalar JSON value to its text form. Objects and arrays
// cannot be stored in a text field.
func textField(raw map[string]interface{}, key string) (string, error) {
	s, ok := scalarText(raw[key])
	if !ok {
		return "", fmt.Errorf("cast to string failed for value %v at path %q", raw[key], key)
	}
	return s, nil
}

func objectIDField(raw map[string]interface{}, key string) (primitive.ObjectID, error) {
	switch v := raw[key].(type) {
	case nil:
		return primitive.NilObjectID, nil
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("cast to ObjectId failed for value %q at path %q", v, key)
		}
		return id, nil
	default:
		return primitive.NilObjectID, fmt.Errorf("cast to ObjectId failed for value %v at path %q", v, key)
	}
}
