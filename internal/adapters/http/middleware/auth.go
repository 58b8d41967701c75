package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sessionStore "smartevents/internal/adapters/storage/session"
	domain "smartevents/internal/domain/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "smartevents_session"

// SecureCookies controls the Secure flag on session cookies. Set true in
// production.
var SecureCookies = false

// SessionReader is the slice of the session store the middleware needs.
type SessionReader interface {
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Auth returns middleware that loads the session named by the cookie into
// the request context. A token whose exp claim has passed is logged out
// here, centrally, rather than waiting for the backend to reject it.
// It does NOT block unauthenticated requests — use RequireAuth or
// RequireRole for that.
func Auth(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				sess, err := sessions.Get(r.Context(), cookie.Value)
				if err == nil {
					if sess.TokenExpired(time.Now()) {
						if err := sessions.Delete(r.Context(), cookie.Value); err != nil {
							slog.Error("session_expire_delete_failed", "error", err.Error())
						}
						ClearSessionCookie(w)
						slog.Info("auth_event", "event", "token_expired_logout", "email", sess.Email)
					} else {
						ctx := context.WithValue(r.Context(), sessionContextKey, sess)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware that blocks users without one of the
// specified roles. Unauthenticated requests go to login; authenticated
// ones with the wrong role get a 403 rather than a redirect loop.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !roleSet[sess.Role] {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(domain.Session)
	return sess, ok
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionCookieID returns the raw session cookie value, if present.
func SessionCookieID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(sessionStore.MaxAge / time.Second),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// IsRole checks if the current session has one of the given roles.
func IsRole(ctx context.Context, roles ...string) bool {
	sess, ok := GetSessionFromContext(ctx)
	if !ok {
		return false
	}
	for _, r := range roles {
		if sess.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin checks if the current session is an admin.
func IsAdmin(ctx context.Context) bool {
	return IsRole(ctx, domain.RoleAdmin)
}
