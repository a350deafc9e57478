package config

import (
	"callbridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			RelaySecret:                utils.GetEnvString("APP_RELAY_SECRET", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			LeadDedupeTTLInMinutes:     utils.GetEnvInt("APP_LEAD_DEDUPE_TTL_IN_MINUTES", 1440),
			HookMaxRequestsPerMinute:   utils.GetEnvInt("APP_HOOK_MAX_REQUESTS_PER_MINUTE", 30),
			HookMaxRequestsPerMonth:    utils.GetEnvInt("APP_HOOK_MAX_REQUESTS_PER_MONTH", 10000),
		},
		HighLevel: HighLevel{
			BaseUrl:             utils.GetEnvString("HIGHLEVEL_BASE_URL", "https://rest.gohighlevel.com/v1"),
			APIKey:              utils.GetEnvString("HIGHLEVEL_API_KEY", ""),
			CalendarID:          utils.GetEnvString("HIGHLEVEL_CALENDAR_ID", ""),
			UserID:              utils.GetEnvString("HIGHLEVEL_USER_ID", ""),
			Timezone:            utils.GetEnvString("HIGHLEVEL_TIMEZONE", "America/Los_Angeles"),
			TimeoutInSeconds:    utils.GetEnvInt("HIGHLEVEL_TIMEOUT_IN_SECONDS", 15),
			MaxRequestPerSecond: utils.GetEnvInt("HIGHLEVEL_MAX_REQUEST_PER_SECOND", 5),
		},
		Voice: Voice{
			CallUrl:          utils.GetEnvString("VOICE_CALL_URL", "https://api.vapi.ai/call"),
			SecretKey:        utils.GetEnvString("VOICE_SECRET_KEY", ""),
			AgentID:          utils.GetEnvString("VOICE_AGENT_ID", ""),
			TimeoutInSeconds: utils.GetEnvInt("VOICE_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
