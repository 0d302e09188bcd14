package middleware

import (
	"context"
	"net/http"

	"github.com/lizbakes/cakeapp-backend/api/responses"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/logger"
)

func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CanActOn reports whether the authenticated actor may operate on the
// given user record. Admins may target anyone, everyone else only
// themselves.
func CanActOn(ctx context.Context, targetID uint) bool {
	if RoleFromContext(ctx) == "admin" {
		return true
	}
	actor := UserIDFromContext(ctx)
	return actor != 0 && actor == targetID
}
