package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
)

// TestInit_RouteTable verifies that every API endpoint is registered with
// the expected method and pattern.
func TestInit_RouteTable(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	router := h.Init()

	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodGet, "/api/overview", true},
		{http.MethodPut, "/api/overview", true},
		{http.MethodGet, "/api/about", true},
		{http.MethodPut, "/api/about", true},

		{http.MethodGet, "/api/skills", true},
		{http.MethodPost, "/api/skills", true},
		{http.MethodPatch, "/api/skills/reorder", true},
		{http.MethodPut, "/api/skills/42", true},
		{http.MethodDelete, "/api/skills/42", true},

		{http.MethodGet, "/api/projects", true},
		{http.MethodGet, "/api/projects/featured", true},
		{http.MethodPost, "/api/projects", true},
		{http.MethodPatch, "/api/projects/reorder", true},
		{http.MethodPut, "/api/projects/42", true},
		{http.MethodDelete, "/api/projects/42", true},

		{http.MethodGet, "/api/contacts", true},
		{http.MethodPost, "/api/contacts", true},
		{http.MethodPatch, "/api/contacts/42/read", true},

		{http.MethodPost, "/api/auth/login", true},

		// not part of the API surface
		{http.MethodDelete, "/api/overview", false},
		{http.MethodPost, "/api/skills/reorder", false},
		{http.MethodGet, "/api/auth/login", false},
		{http.MethodGet, "/api/unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			assert.Equal(t, tt.want, router.Match(rctx, tt.method, tt.path))
		})
	}
}
