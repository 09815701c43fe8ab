// internal/domain/models/text.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a string field that accepts any JSON scalar on input. Numbers and
// booleans keep their text form ("12951", "true") and null becomes "".
// Objects and arrays cannot be stored in a text field and are rejected.
//
// It is stored in BSON and written to JSON as a plain string.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	s, ok := scalarText(v)
	if !ok {
		return fmt.Errorf("cast to string failed for value %s", b)
	}
	*t = Text(s)
	return nil
}

// scalarText renders a decoded JSON scalar as text. ok is false for objects
// and arrays.
func scalarText(v interface{}) (s string, ok bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}
