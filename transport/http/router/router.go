package router

import (
	"docai/internal/handlers/appointment"
	"docai/internal/handlers/health"
	"docai/internal/handlers/patient"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Appointment appointment.Handler
	Patient     patient.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts health probes at the root and the API under /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Patient.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
