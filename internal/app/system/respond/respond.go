// Package respond writes the JSON bodies the record routes return.
//
// Every failure on those routes is reported the same way: HTTP 500 with
// {"error": "<raw message>"}. There are no 4xx codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errTrailingData = errors.New("request body must contain a single JSON value")

// ErrorBody is the JSON shape of a failed request.
// Stack and MongoURI are only filled by routes that report diagnostics.
type ErrorBody struct {
	Error    string `json:"error"`
	Stack    string `json:"stack,omitempty"`
	MongoURI string `json:"mongoUri,omitempty"`
}

// MessageBody is the JSON shape of a confirmation.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes v as JSON with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v as JSON with status 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Message writes {"message": msg} with status 200.
func Message(w http.ResponseWriter, msg string) {
	OK(w, MessageBody{Message: msg})
}

// Error writes {"error": err.Error()} with status 500.
func Error(w http.ResponseWriter, err error) {
	JSON(w, http.StatusInternalServerError, ErrorBody{Error: errorText(err)})
}

// ErrorWith writes a 500 with a caller-filled body. Error is set from err.
func ErrorWith(w http.ResponseWriter, err error, body ErrorBody) {
	body.Error = errorText(err)
	JSON(w, http.StatusInternalServerError, body)
}

// Stack renders err with its call stack when one was recorded
// (github.com/pkg/errors), or just its message otherwise.
func Stack(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched and is not an error, matching a body of {}. Anything after the
// first JSON value is an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}
