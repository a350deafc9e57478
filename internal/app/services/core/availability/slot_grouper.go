package availability

import (
	"time"

	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/responses"
)

// slotTimeLayouts are tried in order when reading a slot timestamp. Values
// with an embedded offset keep it; naive values are read as-is with no
// timezone adjustment.
var slotTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseSlotTime(value string) (time.Time, bool) {
	for _, layout := range slotTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// classifySlot buckets a slot by its local wall-clock hour. Hours 8 through
// 11 are morning; everything else, including nights, is afternoon.
func classifySlot(t time.Time) string {
	if hour := t.Hour(); hour >= 8 && hour < 12 {
		return constvars.PeriodMorning
	}
	return constvars.PeriodAfternoon
}

// GroupSlots buckets slot timestamps by weekday name and period. It never
// fails: timestamps that cannot be parsed are dropped silently, and an empty
// input yields empty collections. Days lists weekdays in first-seen order,
// and Fallback repeats every kept slot in input order.
func GroupSlots(slots []string) *responses.GroupedSlots {
	grouped := make(map[string]*responses.PeriodBuckets)
	days := make([]string, 0)
	fallback := make([]string, 0)

	for _, raw := range slots {
		t, ok := parseSlotTime(raw)
		if !ok {
			continue
		}

		weekday := t.Weekday().String()
		buckets, seen := grouped[weekday]
		if !seen {
			buckets = &responses.PeriodBuckets{
				Morning:   []string{},
				Afternoon: []string{},
			}
			grouped[weekday] = buckets
			days = append(days, weekday)
		}

		if classifySlot(t) == constvars.PeriodMorning {
			buckets.Morning = append(buckets.Morning, raw)
		} else {
			buckets.Afternoon = append(buckets.Afternoon, raw)
		}
		fallback = append(fallback, raw)
	}

	return &responses.GroupedSlots{
		GroupedSlots: grouped,
		Days:         days,
		Periods:      []string{constvars.PeriodMorning, constvars.PeriodAfternoon},
		Fallback:     fallback,
	}
}
