package middleware

import (
	"context"
	"errors"
	"net/http"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/internal/domains/session"
	"comfort/shared/constant"
	"comfort/shared/failure"
	"comfort/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Session resolves the cookie-bound actor and provides the two gate levels.
// Reads stay ungated; write routes wrap RequireAuthenticated. RequireAdmin
// exists because the role is stored, but no current route uses it.
type Session interface {
	WithActor(next http.Handler) http.Handler
	RequireAuthenticated(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

type sessionImpl struct {
	store session.Store
	cfg   *config.Config
	otel  otel.Otel
}

func NewSessionMiddleware(store session.Store, cfg *config.Config, otel otel.Otel) Session {
	return &sessionImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
	}
}

// WithActor loads the session referenced by the request cookie, if any, and
// attaches the actor identity to the request context. It never rejects: a
// missing or expired session just leaves the request unauthenticated.
func (m *sessionImpl) WithActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")
		defer scope.End()

		cookie, err := request.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(writer, request)

			return
		}

		sess, err := m.store.Get(ctx, cookie.Value)
		if errors.Is(err, session.ErrSessionNotFound) {
			next.ServeHTTP(writer, request)

			return
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to resolve session, treating request as unauthenticated")
			scope.TraceError(err)

			next.ServeHTTP(writer, request)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, sess.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, sess.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, sess.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, sess.Role)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *sessionImpl) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		username, _ := request.Context().Value(constant.ContextKeyUsername).(string)

		if username == "" {
			response.WithError(writer, failure.UnauthenticatedError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *sessionImpl) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		username, _ := request.Context().Value(constant.ContextKeyUsername).(string)
		if username == "" {
			response.WithError(writer, failure.UnauthenticatedError)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		if role != constant.RoleAdmin {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
