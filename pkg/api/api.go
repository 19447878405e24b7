// Package api defines the request and response messages of the salonbook.v1
// RPC services. Messages travel as JSON; field names are snake_case.
package api

// Service is a catalog entry.
type Service struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int32   `json:"duration"`
	Description string  `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at,omitempty"`
}

// Appointment is a booked slot. ServiceId mirrors ServiceIds[0].
type Appointment struct {
	Id             string   `json:"id"`
	ClientName     string   `json:"client_name"`
	Phone          string   `json:"phone,omitempty"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	ServiceId      string   `json:"service_id"`
	ServiceIds     []string `json:"service_ids"`
	PaymentMethod  string   `json:"payment_method,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	TotalPrice     float64  `json:"total_price"`
	EffectivePrice float64  `json:"effective_price"`
	Attended       bool     `json:"attended"`
	CreatedAt      int64    `json:"created_at,omitempty"`
}

// AppointmentInput carries the editable fields of an appointment.
// TotalPrice 0 asks the server to snapshot the sum of the bundle.
type AppointmentInput struct {
	ClientName    string   `json:"client_name"`
	Phone         string   `json:"phone,omitempty"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	ServiceIds    []string `json:"service_ids"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	TotalPrice    float64  `json:"total_price,omitempty"`
}

// CalendarDay is one of the 42 cells of a month view.
type CalendarDay struct {
	Date           string `json:"date"`
	Day            int32  `json:"day"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
	IsSelected     bool   `json:"is_selected"`
}

// Summary is the revenue view of a selected date.
type Summary struct {
	SelectedDate string  `json:"selected_date"`
	DayCount     int32   `json:"day_count"`
	DayTotal     float64 `json:"day_total"`
	MonthTotal   float64 `json:"month_total"`
}

// TimeSlot is one entry of the slot picker.
type TimeSlot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// CatalogService messages.

type ListServicesRequest struct{}

type ListServicesResponse struct {
	Services []*Service `json:"services"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int32   `json:"duration"`
	Description string  `json:"description,omitempty"`
}

type CreateServiceResponse struct {
	Service *Service `json:"service"`
}

type UpdateServiceRequest struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int32   `json:"duration"`
	Description string  `json:"description,omitempty"`
}

type UpdateServiceResponse struct {
	Service *Service `json:"service"`
}

type DeleteServiceRequest struct {
	Id string `json:"id"`
}

type DeleteServiceResponse struct{}

// AppointmentService messages.

type ListAppointmentsRequest struct {
	// Date filters to one day when set (YYYY-MM-DD).
	Date string `json:"date,omitempty"`
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type CreateAppointmentRequest struct {
	Appointment *AppointmentInput `json:"appointment"`
}

type CreateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type UpdateAppointmentRequest struct {
	Id          string            `json:"id"`
	Appointment *AppointmentInput `json:"appointment"`
}

type UpdateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type DeleteAppointmentRequest struct {
	Id string `json:"id"`
}

type DeleteAppointmentResponse struct{}

type SetAttendedRequest struct {
	Id       string `json:"id"`
	Attended bool   `json:"attended"`
}

type SetAttendedResponse struct{}

type GetBookedSlotsRequest struct {
	Date                 string `json:"date"`
	ExcludeAppointmentId string `json:"exclude_appointment_id,omitempty"`
}

type GetBookedSlotsResponse struct {
	// Times is sorted ascending.
	Times []string `json:"times"`
}

type GetTimeOptionsRequest struct {
	// Date is optional; without it no slot is marked booked.
	Date                 string `json:"date,omitempty"`
	ExcludeAppointmentId string `json:"exclude_appointment_id,omitempty"`
}

type GetTimeOptionsResponse struct {
	Slots []*TimeSlot `json:"slots"`
}

// CalendarService messages.

type GetMonthViewRequest struct {
	Year         int32  `json:"year"`
	Month        int32  `json:"month"`
	SelectedDate string `json:"selected_date,omitempty"`
	// Today defaults to the server's local date.
	Today string `json:"today,omitempty"`
}

type GetMonthViewResponse struct {
	Days    []*CalendarDay `json:"days"`
	Summary *Summary       `json:"summary,omitempty"`
}

type GetDaySummaryRequest struct {
	SelectedDate string `json:"selected_date"`
}

type GetDaySummaryResponse struct {
	Summary *Summary `json:"summary"`
}

// ReminderService messages.

type ComposeReminderRequest struct {
	AppointmentId string `json:"appointment_id"`
}

type ComposeReminderResponse struct {
	Message string `json:"message"`
	// Link opens a chat with the client prefilled with Message; empty when
	// the appointment has no phone number.
	Link string `json:"link,omitempty"`
}

type SendReminderRequest struct {
	AppointmentId string `json:"appointment_id"`
}

type SendReminderResponse struct {
	Provider string `json:"provider"`
}
