package api_context

import (
	"context"

	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type ctxKey string

const (
	ProjectIDKey  ctxKey = "projectID"
	SceneIDKey    ctxKey = "sceneID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func ProjectIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ProjectIDKey).(uuid.UUID)
	return id, ok
}

func WithProjectID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ProjectIDKey, id)
}

func SceneIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SceneIDKey).(string)
	return id, ok && id != ""
}

func AuthUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
