package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
)

func serveHelper(t *testing.T, handler iris.Handler) *httptest.ResponseRecorder {
	t.Helper()

	app := iris.New()
	app.Get("/respond", handler)
	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/respond", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateEmailAlreadyRegistered(t *testing.T) {
	resp := serveHelper(t, func(ctx iris.Context) {
		CreateEmailAlreadyRegistered(ctx)
	})

	// Domain conflicts answer 400 across the API; duplicate email included.
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusBadRequest)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
	if body.Error != "Conflict" {
		t.Fatalf("error code = %q, want %q", body.Error, "Conflict")
	}
	if body.Message == "" {
		t.Fatal("expected a message")
	}
}
