package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestDefaultErrorHandler_ServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("wrapped: %w", apperrors.ConflictError(nil, "Transaction hash already used"))
	DefaultErrorHandler(rec, err)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeErrorBody(t, rec)
	if got.Error != "Transaction hash already used" || got.Code != http.StatusConflict {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestDefaultErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	DefaultErrorHandler(rec, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	got := decodeErrorBody(t, rec)
	if got.Error != "Unexpected Service Error" {
		t.Fatalf("expected opaque message, got %q", got.Error)
	}
}

func TestHandleError_PassesThroughOnSuccess(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
}

func TestReadJSON_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{invalid"))
	var v map[string]any
	err := ReadJSON(req, &v)
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}
