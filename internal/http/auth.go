package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/inetstore/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || tokenStr == "" {
			a.writeUnauthorized(w, r, "missing token")
			return
		}

		principal, err := a.authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.Logger.DebugContext(r.Context(), "rejected bearer token", "err", err.Error())
			a.writeUnauthorized(w, r, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

func (a *API) writeUnauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="inetstore"`)
	if err := encode(w, r, http.StatusUnauthorized, ErrorResponse{Error: msg}); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}
