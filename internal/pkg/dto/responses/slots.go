package responses

// GroupedSlots is the tool-call result for an availability lookup. Days keeps
// the order in which each weekday was first seen; Fallback keeps every
// grouped slot in input order so the agent can still read a flat list.
type GroupedSlots struct {
	GroupedSlots map[string]*PeriodBuckets `json:"grouped_slots"`
	Days         []string                  `json:"days"`
	Periods      []string                  `json:"periods"`
	Fallback     []string                  `json:"fallback"`
}

// PeriodBuckets splits one weekday's slots into morning and afternoon.
type PeriodBuckets struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
}
