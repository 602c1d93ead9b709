package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"photoshare/internal/models"
	"photoshare/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity кладет аутентифицированную личность в контекст запроса
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext достает личность из контекста; ok=false для анонима
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}

const SessionCookieName = "session_token"

// защищенные маршруты: анонимный запрос перенаправляется на /login
var protectedPrefixes = []string{
	"/dashboard",
	"/upload",
	"/profile",
	"/edit_post/",
	"/delete_post/",
	"/messages",
	"/send_message",
	"/delete_message/",
	"/send_post_message/",
}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasSuffix(p, "/") {
			// /upload защищен, а /uploads/{filename} публичен, поэтому
			// по префиксу сопоставляются только маршруты с завершающим слешем
			if path == strings.TrimSuffix(p, "/") || strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}

// SessionMiddleware разбирает сессионную куку и добавляет личность в контекст.
// Для защищенных маршрутов аноним получает редирект на /login вместо 401
func SessionMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err == nil {
				if identity, parseErr := authService.ParseSessionToken(cookie.Value); parseErr == nil {
					r = r.WithContext(WithIdentity(r.Context(), *identity))
				}
			}

			if _, ok := IdentityFromContext(r.Context()); !ok && isProtected(r.URL.Path) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware логирует каждый запрос с request id, статусом и задержкой
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		log.Printf("request_id=%s method=%s path=%s status=%d latency_ms=%.2f",
			requestID,
			r.Method,
			r.URL.Path,
			sw.status,
			float64(time.Since(startedAt).Microseconds())/1000.0,
		)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
