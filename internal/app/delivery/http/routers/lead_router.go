package routers

import (
	"callbridge-service/internal/app/delivery/http/controllers"
	"callbridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The lead hook is called by the CRM, which cannot send the relay secret, so
// it relies on the redis-backed hook limiter instead.
func attachLeadRoutes(r chi.Router, m *middlewares.Middlewares, ctrl *controllers.LeadController) {
	r.Post("/lead", ctrl.HandleInboundLead)
}
