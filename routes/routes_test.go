package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestUnknownAPIRouteReturnsJSON ensures undefined API paths answer with
// a JSON 404 instead of Gin's default body.
func TestUnknownAPIRouteReturnsJSON(t *testing.T) {
	router := SetupRouter(nil, "test-secret", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/nothing-here", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
	if body["path"] != "/api/nothing-here" {
		t.Fatalf("unexpected body: %v", body)
	}
}

// TestProtectedRoutesRequireAuth ensures mutations are rejected without a
// token before any other processing happens.
func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := SetupRouter(nil, "test-secret", nil)

	tcs := []struct {
		method string
		target string
	}{
		{"POST", "/api/listings"},
		{"PATCH", "/api/listings/64f000000000000000000001"},
		{"DELETE", "/api/listings/64f000000000000000000001"},
		{"GET", "/api/users/me"},
		{"PATCH", "/api/users/me"},
		{"POST", "/api/upload"},
	}

	for _, tc := range tcs {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", tc.method, tc.target, w.Code)
		}
	}
}

// TestSearchRouteIsPublic ensures the search endpoint answers without a
// token; the blank query path needs no store.
func TestSearchRouteIsPublic(t *testing.T) {
	router := SetupRouter(nil, "test-secret", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?q=", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
