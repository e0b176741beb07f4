package router

import (
	"github.com/go-chi/chi/v5"

	"hostconnect/internal/handlers/addon"
	"hostconnect/internal/handlers/auth"
	"hostconnect/internal/handlers/booking"
	"hostconnect/internal/handlers/health"
	"hostconnect/internal/handlers/media"
	"hostconnect/internal/handlers/property"
	"hostconnect/internal/handlers/room"
	"hostconnect/internal/handlers/roomtype"
	"hostconnect/transport/http/middleware"
)

type DomainHandlers struct {
	Health   health.Handler
	Auth     auth.Handler
	Property property.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Addon    addon.Handler
	Booking  booking.Handler
	Media    media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// Public surface: health plus the booking engine the guest-facing
		// site drives. Everything else requires an authenticated session.
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.PublicRouter(routerGroup)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(r.Auth.Auth)

			r.DomainHandlers.Property.Router(adminGroup)
			r.DomainHandlers.RoomType.Router(adminGroup)
			r.DomainHandlers.Room.Router(adminGroup)
			r.DomainHandlers.Addon.Router(adminGroup)
			r.DomainHandlers.Booking.Router(adminGroup)
			r.DomainHandlers.Media.Router(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
