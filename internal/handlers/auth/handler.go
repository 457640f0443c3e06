package auth

import (
	"net/http"

	"comfort/config"
	"comfort/infras/otel"
	"comfort/internal/domains/auth/model/dto"
	"comfort/internal/domains/auth/service"
	"comfort/shared/constant"
	"comfort/shared/validator"
	"comfort/transport/http/middleware"
	"comfort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const secondsPerHour = 3600

type Handler struct {
	service    service.Auth
	middleware middleware.Session
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.Auth, middleware middleware.Session, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		cfg:        cfg,
		otel:       otel,
	}
}

// AdminRouter registers the staff login endpoints, mounted outside /api.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)

		routerGroup.Group(func(gated chi.Router) {
			gated.Use(handler.middleware.RequireAuthenticated)
			gated.Post("/logout", handler.Logout)
		})
	})
}

// Router registers the session status endpoint under /api.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/auth/status", handler.Status)
}

// Login verifies staff credentials and sets the session cookie.
// @Summary Staff login
// @Description Verify username/password and establish a cookie-bound session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Authenticated staff identity"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	sess, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Str("username", req.Username).Msg("login rejected")

		response.WithError(writer, err)

		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   handler.cfg.Session.TTLHours * secondsPerHour,
		HttpOnly: true,
		Secure:   handler.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	scope.AddEvent("Session established for " + sess.Username)

	res := dto.LoginResponse{}
	res.FromSession(sess)

	response.WithJSON(writer, http.StatusOK, res)
}

// Logout destroys the server-side session and clears the cookie.
// @Summary Staff logout
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /admin/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(writer, err)

		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	scope.AddEvent("Session destroyed")

	response.WithMessage(writer, http.StatusOK, "Logged out successfully")
}

// Status reports whether the caller holds a live session.
// @Summary Session status
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatusResponse "Session presence and identity"
// @Router /api/auth/status [get]
func (handler *Handler) Status(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	response.WithJSON(writer, http.StatusOK, dto.StatusResponse{
		Authenticated: username != "",
		Username:      username,
		Role:          role,
	})
}
