package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hima-Kishore/turf-booking-system/services"

	"github.com/kataras/iris/v12"
)

func serveBookingError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	app := iris.New()
	app.Get("/fail", func(ctx iris.Context) {
		respondBookingError(err, ctx)
	})
	if buildErr := app.Build(); buildErr != nil {
		t.Fatalf("building app: %v", buildErr)
	}

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestRespondBookingError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"slot not found", services.ErrSlotNotFound, http.StatusBadRequest, "Not Found"},
		{"booking not found", services.ErrBookingNotFound, http.StatusBadRequest, "Not Found"},
		{"slot already booked", services.ErrSlotAlreadyBooked, http.StatusBadRequest, "Conflict"},
		{"already cancelled", services.ErrBookingAlreadyCancelled, http.StatusBadRequest, "Conflict"},
		{"slot in past", services.ErrSlotInPast, http.StatusBadRequest, "Validation Error"},
		{"slot too soon", services.ErrSlotTooSoon, http.StatusBadRequest, "Validation Error"},
		{"cancel window closed", services.ErrCancelWindowClosed, http.StatusBadRequest, "Validation Error"},
		{"not the owner", services.ErrNotBookingOwner, http.StatusForbidden, "Forbidden"},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := serveBookingError(t, tc.err)
			if resp.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.Code, tc.wantStatus)
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
			if body.Error != tc.wantCode {
				t.Fatalf("error code = %q, want %q", body.Error, tc.wantCode)
			}
		})
	}
}
