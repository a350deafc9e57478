package responses

import "github.com/goccy/go-json"

// LeadResult reports what the lead webhook did. CallResponse carries the
// voice platform's own body through untouched.
type LeadResult struct {
	Status       string          `json:"status"`
	CallResponse json.RawMessage `json:"call_response,omitempty"`
}
