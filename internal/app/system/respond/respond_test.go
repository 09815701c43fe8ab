package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/railops/internal/app/system/respond"
	pkgerrors "github.com/pkg/errors"
)

func TestError_Writes500WithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, pkgerrors.New("connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["error"] != "connection refused" {
		t.Errorf("error: got %v", body["error"])
	}
	if _, ok := body["stack"]; ok {
		t.Error("stack should be omitted")
	}
}

func TestErrorWith_CarriesDiagnostics(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New("server selection timeout")
	respond.ErrorWith(rec, err, respond.ErrorBody{Stack: respond.Stack(err), MongoURI: "MongoDB URI is set"})

	var body respond.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Error != "server selection timeout" {
		t.Errorf("error: got %q", body.Error)
	}
	if !strings.Contains(body.Stack, "TestErrorWith_CarriesDiagnostics") {
		t.Errorf("stack should name the calling test, got %q", body.Stack)
	}
	if body.MongoURI != "MongoDB URI is set" {
		t.Errorf("mongoUri: got %q", body.MongoURI)
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Message(rec, "done")

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"done"}` {
		t.Errorf("body: got %s", got)
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	v := struct{ Name string }{Name: "unchanged"}
	if err := respond.DecodeJSON(req, &v); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if v.Name != "unchanged" {
		t.Errorf("Name: got %q", v.Name)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	var v map[string]interface{}
	if err := respond.DecodeJSON(req, &v); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestDecodeJSON_TrailingData(t *testing.T) {
	for _, body := range []string{`{"name":"a"} trailing-garbage`, `{"name":"a"}{"name":"b"}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var v map[string]interface{}
		if err := respond.DecodeJSON(req, &v); err == nil {
			t.Errorf("%q: expected error for trailing data", body)
		}
	}
}

func TestDecodeJSON_TrailingWhitespaceAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"a\"}\n  \n"))
	var v map[string]interface{}
	if err := respond.DecodeJSON(req, &v); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if v["name"] != "a" {
		t.Errorf("name: got %v", v["name"])
	}
}
