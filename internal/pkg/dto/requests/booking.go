package requests

// CreateBooking is the body of the booking endpoint. Phone is normalized to
// E.164 before it is forwarded upstream.
type CreateBooking struct {
	Phone     string `json:"phone" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// HighLevelBooking is the payload forwarded to the calendar's appointment
// endpoint. The phone is already normalized, so it must read as E.164 here.
type HighLevelBooking struct {
	CalendarID       string `json:"calendarId"`
	SelectedSlot     string `json:"selectedSlot"`
	SelectedTimezone string `json:"selectedTimezone"`
	Phone            string `json:"phone" validate:"required,phone_number"`
	Email            string `json:"email,omitempty"`
	Name             string `json:"name,omitempty"`
}
