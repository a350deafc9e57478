package responses

// HighLevelDaySlots is one value of the calendar's availability map, which is
// keyed by date string ("2006-01-02").
type HighLevelDaySlots struct {
	Slots []string `json:"slots"`
}

// HighLevelAvailability is the raw body of the calendar's free-slots endpoint.
type HighLevelAvailability map[string]HighLevelDaySlots
