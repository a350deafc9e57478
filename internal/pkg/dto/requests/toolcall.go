package requests

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ToolCallEnvelope is the payload the voice platform POSTs when the agent
// invokes a server tool. Only the first tool call is acted on.
type ToolCallEnvelope struct {
	Message ToolCallMessage `json:"message"`
}

type ToolCallMessage struct {
	ToolCalls []ToolCall `json:"toolCalls"`
}

type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name      string                `json:"name"`
	Arguments AvailabilityArguments `json:"arguments"`
}

// AvailabilityArguments carries the requested window. The platform's LLM
// fills these in and is not consistent about types, so both JSON numbers and
// numeric strings are accepted.
type AvailabilityArguments struct {
	StartDate EpochValue `json:"startDate"`
	EndDate   EpochValue `json:"endDate"`
}

// EpochValue is an epoch timestamp that tolerates number or string encoding.
// Zero value means absent.
type EpochValue struct {
	value int64
	valid bool
}

func NewEpochValue(v int64) EpochValue {
	return EpochValue{value: v, valid: true}
}

func (e EpochValue) Int64() (int64, bool) {
	return e.value, e.valid
}

func (e *EpochValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		parsed, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
		if err != nil {
			return fmt.Errorf("epoch value %q is not an integer", str)
		}
		e.value = parsed
		e.valid = true
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	e.value = int64(num)
	e.valid = true
	return nil
}

func (e EpochValue) MarshalJSON() ([]byte, error) {
	if !e.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(e.value, 10)), nil
}

// First returns the first tool call of the envelope, if any.
func (env *ToolCallEnvelope) First() (ToolCall, bool) {
	if len(env.Message.ToolCalls) == 0 {
		return ToolCall{}, false
	}
	return env.Message.ToolCalls[0], true
}
