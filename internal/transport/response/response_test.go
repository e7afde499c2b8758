package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteMessage(w, "hello"); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "hello" {
		t.Errorf("Expected message 'hello', got %q", result["message"])
	}
}

func TestWriteSummary(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteSummary(w, "- a bullet"); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["summary"] != "- a bullet" {
		t.Errorf("Expected summary '- a bullet', got %q", result["summary"])
	}
}

func TestWriteBadRequestOmitsDetails(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteBadRequest(w, "URL is required"); err != nil {
		t.Fatalf("WriteBadRequest failed: %v", err)
	}

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "details") {
		t.Errorf("Expected no details field, got %s", w.Body.String())
	}
}

func TestWriteInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteInternalError(w, "Failed to generate summary", "auth: bad key"); err != nil {
		t.Fatalf("WriteInternalError failed: %v", err)
	}

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["error"] != "Failed to generate summary" {
		t.Errorf("Expected generic error, got %q", result["error"])
	}
	if result["details"] != "auth: bad key" {
		t.Errorf("Expected details 'auth: bad key', got %q", result["details"])
	}
}
