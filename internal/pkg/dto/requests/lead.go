package requests

// InboundLead is the body posted by the lead webhook. Only the phone is
// mandatory; name and email fall back to placeholders.
type InboundLead struct {
	Phone string `json:"phone" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OutboundCall is the payload sent to the voice platform to start a call.
// The phone is already normalized, so it must read as E.164 here.
type OutboundCall struct {
	AgentID  string       `json:"agent_id"`
	Phone    string       `json:"phone" validate:"required,phone_number"`
	Metadata CallMetadata `json:"metadata"`
}

type CallMetadata struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Source string `json:"source"`
}
