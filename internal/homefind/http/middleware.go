package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/idx"
)

// AuthnMiddleware verifies the Bearer access token and confirms its backing
// session is still live. The resolved identity is stored on the request
// context for handlers.
func AuthnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized,
					"invalid_token", "Missing or malformed Authorization header")
				return
			}

			id, err := sessions.Authenticate(r.Context(), raw)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized,
					"invalid_token", "Access token is invalid or the session has ended")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, id.UserID.String())
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, string(id.Role))
			ctx = context.WithValue(ctx, httpx.CtxKeySessionID, id.SessionID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role is not in the
// allowed set. Must run after AuthnMiddleware.
func RequireRole(roles ...domain.Role) httpx.Middleware {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := domain.Role(httpx.RoleFromContext(r.Context()))
			if !allowed[role] {
				httpx.WriteError(w, http.StatusForbidden,
					"forbidden", "This action requires a different account role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// identityFromContext rebuilds the service identity placed on the context
// by AuthnMiddleware.
func identityFromContext(ctx context.Context) (service.Identity, bool) {
	userID, err := uuid.Parse(httpx.UserIDFromContext(ctx))
	if err != nil {
		return service.Identity{}, false
	}
	role, err := domain.ParseRole(httpx.RoleFromContext(ctx))
	if err != nil {
		return service.Identity{}, false
	}
	sessionID, err := idx.Parse(httpx.SessionIDFromContext(ctx))
	if err != nil {
		return service.Identity{}, false
	}
	return service.Identity{UserID: userID, Role: role, SessionID: sessionID}, true
}
