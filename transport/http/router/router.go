package router

import (
	"net/http"

	"jaruri/internal/handlers/auth"
	"jaruri/internal/handlers/booking"
	"jaruri/internal/handlers/catalog"
	"jaruri/internal/handlers/contact"
	"jaruri/internal/handlers/location"
	"jaruri/internal/handlers/professional"
	"jaruri/internal/handlers/review"
	"jaruri/internal/handlers/stats"
	"jaruri/transport/http/middleware"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Catalog      catalog.Handler
	Location     location.Handler
	Professional professional.Handler
	Booking      booking.Handler
	Review       review.Handler
	Contact      contact.Handler
	Stats        stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/health", func(writer http.ResponseWriter, request *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Professional.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
