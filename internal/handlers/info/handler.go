package info

import (
	"net/http"

	"comfort/config"
	"comfort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{cfg: cfg}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/info", handler.Info)
}

type Info struct {
	Project     string `json:"project"`
	Description string `json:"description"`
	Environment string `json:"environment"`
}

// Info returns the static project blob the front end shows on its about
// page.
// @Summary Project info
// @Tags Info
// @Produce json
// @Success 200 {object} Info "Project info"
// @Router /api/info [get]
func (handler *Handler) Info(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, Info{
		Project:     handler.cfg.App.Name,
		Description: "Hotel booking backend API",
		Environment: handler.cfg.Server.Env,
	})
}
