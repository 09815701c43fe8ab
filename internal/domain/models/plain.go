package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Plain converts values decoded from BSON into a shape encoding/json renders
// as ordinary objects and arrays. Embedded documents decode as primitive.D,
// which would otherwise serialize as a list of {Key, Value} pairs.
func Plain(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = Plain(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = Plain(e)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = Plain(e)
		}
		return m
	case primitive.A:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = Plain(e)
		}
		return s
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = Plain(e)
		}
		return s
	default:
		return v
	}
}
