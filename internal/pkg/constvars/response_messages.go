package constvars

const (
	ResponseUnknown = "unknown"

	StatusVoiceCallTriggered = "voice call triggered"
	StatusDuplicateLead      = "duplicate lead ignored"
)

// Upstream service names used in log fields and dev error messages.
const (
	ServiceHighLevel = "HighLevel"
	ServiceVoice     = "VoiceAgent"
)
