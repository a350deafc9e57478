package constvars

// Client-facing messages. Kept deliberately vague for 5xx classes; the
// matching Dev message carries the useful detail into the logs.
const (
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact developer"
	ErrClientNotAuthorized                 = "You are not authorized for this action"
	ErrClientTooManyRequests               = "Too many requests"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"

	ErrClientInvalidSlotWindow    = "Invalid or missing startDate/endDate"
	ErrClientSlotFetchFailed      = "Failed to fetch or parse HighLevel response"
	ErrClientUpstreamAPIError     = "HighLevel API error: %s"
	ErrClientMissingBookingFields = "Missing required fields: 'phone' and/or 'startTime'"
	ErrClientMissingLeadData      = "Missing required lead data"
	ErrClientBookingFailed        = "Failed to book"
	ErrClientBookingRequestFailed = "Booking request failed"
	ErrClientVoiceCallFailed      = "voice call failed"
)

// Developer-facing messages, logged but hidden from clients in production.
const (
	ErrDevValidationFailed  = "Validation failed"
	ErrDevInvalidInput      = "Invalid input"
	ErrDevCannotParseJSON   = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON = "Failed to marshal value to JSON"
	ErrDevReadRequestBody   = "Failed to read request body"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"
	ErrDevDecodeResponse    = "Failed to decode %s response body"
	ErrDevUpstreamRejected  = "%s rejected the request"

	ErrDevInvalidRelaySecret = "Relay secret header does not match"

	ErrDevRedisGetNoData     = "Failed to get data with key: %s"
	ErrDevRedisSetData       = "Failed to set data to redis"
	ErrDevRedisDeleteData    = "Failed to delete data from redis"
	ErrDevRedisIncrementData = "Failed to increment value in redis"
)
