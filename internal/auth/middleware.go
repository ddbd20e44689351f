package auth

import (
	"context"
	"net/http"

	"github.com/foldik/course-admin/internal/models"
	"github.com/foldik/course-admin/internal/utils"
)

type ctxKey string

const ctxUserKey ctxKey = "currentUser"

// SessionProvider resolves the user behind a request.
type SessionProvider interface {
	CurrentUser() models.UserProfile
}

func GetUserFromCtx(ctx context.Context) *models.UserProfile {
	if u, ok := ctx.Value(ctxUserKey).(*models.UserProfile); ok {
		return u
	}
	return nil
}

func WithUser(ctx context.Context, u models.UserProfile) context.Context {
	return context.WithValue(ctx, ctxUserKey, &u)
}

// SessionMiddleware sets the provider's current user in context. There are no
// credentials to check; every request gets the same session.
func SessionMiddleware(p SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), p.CurrentUser())))
		})
	}
}

// RoleMiddleware lets the request through only when the session user holds
// one of roles.
func RoleMiddleware(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	set := map[models.Role]struct{}{}
	for _, r := range allowedRoles {
		set[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := GetUserFromCtx(r.Context())
			if u == nil {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if _, ok := set[u.Role]; !ok {
				utils.WriteError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
