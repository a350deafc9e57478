package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/delivery/http/controllers"
	"callbridge-service/internal/app/delivery/http/middlewares"
	"callbridge-service/internal/app/delivery/http/routers"
	"callbridge-service/internal/app/drivers/database"
	"callbridge-service/internal/app/drivers/logger"
	"callbridge-service/internal/app/services/core/availability"
	"callbridge-service/internal/app/services/core/bookings"
	"callbridge-service/internal/app/services/core/leads"
	"callbridge-service/internal/app/services/highlevel"
	"callbridge-service/internal/app/services/shared/ratelimiter"
	"callbridge-service/internal/app/services/shared/redis"
	"callbridge-service/internal/app/services/voice"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, zapLogger)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server %s listening on %s", internalConfig.App.Version, internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, zapLogger *zap.Logger) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(zapLogger, bootstrap.InternalConfig)

	// Upstream clients
	highLevelClient := highlevel.NewHighLevelClient(bootstrap.InternalConfig, zapLogger)
	voiceDialer := voice.NewVoiceDialer(bootstrap.InternalConfig, zapLogger)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(highLevelClient, zapLogger)
	availabilityController := controllers.NewAvailabilityController(zapLogger, availabilityUsecase)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(highLevelClient, bootstrap.InternalConfig, zapLogger)
	bookingController := controllers.NewBookingController(zapLogger, bookingUsecase)

	// Lead webhook
	hookLimiter := ratelimiter.NewHookRateLimiter(redisRepository, zapLogger, bootstrap.InternalConfig)
	leadUsecase := leads.NewLeadUsecase(voiceDialer, redisRepository, bootstrap.InternalConfig, zapLogger)
	leadController := controllers.NewLeadController(zapLogger, leadUsecase, hookLimiter)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, availabilityController, bookingController, leadController)
}
