package routers

import (
	"callbridge-service/internal/app/delivery/http/controllers"
	"callbridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(r chi.Router, m *middlewares.Middlewares, ctrl *controllers.AvailabilityController) {
	r.With(m.RelaySecretAuth).Post("/", ctrl.HandleFindSlots)
}
