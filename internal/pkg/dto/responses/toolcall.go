package responses

// ToolCallResponse is the envelope the voice platform expects back from a
// server tool. It is always sent with HTTP 200; failures travel inside the
// per-call Error field so the agent can speak them.
type ToolCallResponse struct {
	Results []ToolCallResult `json:"results"`
}

type ToolCallResult struct {
	ToolCallID string      `json:"toolCallId"`
	Result     interface{} `json:"result,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    string      `json:"details,omitempty"`
}
