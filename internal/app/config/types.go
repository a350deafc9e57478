package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App       App
		HighLevel HighLevel
		Voice     Voice
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		RelaySecret                string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		LeadDedupeTTLInMinutes     int
		HookMaxRequestsPerMinute   int
		HookMaxRequestsPerMonth    int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	HighLevel struct {
		BaseUrl             string
		APIKey              string
		CalendarID          string
		UserID              string
		Timezone            string
		TimeoutInSeconds    int
		MaxRequestPerSecond int
	}

	Voice struct {
		CallUrl          string
		SecretKey        string
		AgentID          string
		TimeoutInSeconds int
	}
)
