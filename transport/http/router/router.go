package router

import (
	"resort/internal/handlers/auth"
	"resort/internal/handlers/availability"
	"resort/internal/handlers/booking"
	"resort/internal/handlers/packages"
	"resort/internal/handlers/pricing"
	"resort/internal/handlers/rates"
	"resort/internal/handlers/room"
	"resort/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Room         room.Handler
	Rates        rates.Handler
	Packages     packages.Handler
	Pricing      pricing.Handler
	Booking      booking.Handler
	Availability availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	authRole       middleware.AuthRole
}

// SetupRoutes mounts every domain router under /v1 behind the auth and RBAC
// middleware. Public endpoints are skipped via the permissions table.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authRole.Auth)
		routerGroup.Use(r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Rates.Router(routerGroup)
		r.DomainHandlers.Packages.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		authRole:       authRole,
	}
}
