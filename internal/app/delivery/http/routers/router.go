package routers

import (
	"fmt"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/delivery/http/controllers"
	"callbridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
	leadController *controllers.LeadController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-relay-secret"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, window)
	router.Use(rateLimiter)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	router.Use(chimiddleware.RequestSize(bodyLimit))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	mount := func(r chi.Router) {
		r.Route("/slots", func(r chi.Router) {
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/book", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/webhook", func(r chi.Router) {
			attachLeadRoutes(r, middlewares, leadController)
		})
	}

	if prefix := internalConfig.App.EndpointPrefix; prefix != "" {
		router.Route(fmt.Sprintf("/%s", prefix), mount)
		return
	}
	mount(router)
}
