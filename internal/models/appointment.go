package models

// Appointment represents one client booked into one time slot.
type Appointment struct {
	// ID is the unique identifier for the appointment (UUID format).
	ID string

	// ClientName is the name of the client. Must not be empty.
	ClientName string

	// Phone is the client's phone number as typed (digits and formatting).
	Phone string

	// Date is the calendar date of the appointment (YYYY-MM-DD).
	Date string

	// Time is the start time of the appointment (HH:MM, 24-hour).
	Time string

	// Services is the bundle of services booked, primary service first.
	Services Bundle

	// PaymentMethod is an optional note on how the client pays (e.g., "cash", "pix").
	PaymentMethod string

	// Notes is an optional free-form note.
	Notes string

	// TotalPrice is the price snapshot taken at booking time, usually the sum
	// of all bundled services. Zero means unset: the price is then looked up
	// from the primary service.
	TotalPrice float64

	// Attended records whether the client showed up.
	Attended bool

	// CreatedAt is the Unix timestamp when the appointment was created.
	CreatedAt int64
}

// ServiceID returns the primary service of the appointment, or "" when the
// bundle is empty.
func (a Appointment) ServiceID() string {
	return a.Services.Primary()
}
