package router

import (
	"comfort/internal/handlers/auth"
	"comfort/internal/handlers/booking"
	"comfort/internal/handlers/contact"
	"comfort/internal/handlers/info"
	"comfort/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Contact contact.Handler
	Booking booking.Handler
	Info    info.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.App
	Session        middleware.Session
}

// SetupRoutes wires the full HTTP surface: the /api resource tree plus the
// /admin login endpoints. Actor resolution runs on every route so read
// handlers can stamp created_by when staff happen to be logged in.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.Session.WithActor)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Info.Router(routerGroup)
	})

	r.DomainHandlers.Auth.AdminRouter(router)
}

func New(domainHandlers DomainHandlers, app middleware.App, session middleware.Session) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Session:        session,
	}
}
