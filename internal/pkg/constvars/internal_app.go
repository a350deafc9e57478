package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLBRDG_SVC_"
)

const (
	// LeadSourceFacebook tags outbound call metadata for leads arriving
	// through the lead webhook. The upstream CRM only forwards Facebook
	// lead-gen forms to this relay today.
	LeadSourceFacebook = "Facebook Lead"

	// LeadFallbackName and LeadFallbackEmail are substituted when the lead
	// payload omits the optional fields, so the dialer always receives a
	// complete metadata object.
	LeadFallbackName  = "Unknown"
	LeadFallbackEmail = "ghost@fallback.ai"
)

const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
)

// HookNameLead keys the lead webhook's rate-limit counters.
const HookNameLead = "lead"
