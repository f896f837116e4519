package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fhuszti/studio-ms-go/internal/api_context"
	"github.com/fhuszti/studio-ms-go/internal/handler/api"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
)

func WithProjectID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			parsedID, err := uuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", id), nil)
				return
			}

			ctx := api_context.WithProjectID(r.Context(), parsedID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSceneID stashes the scene id route param. Scene ids are opaque strings.
func WithSceneID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "sceneID")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "scene ID is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.SceneIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
