package models

// Service represents something the professional offers (e.g., "Haircut", "Manicure").
type Service struct {
	// ID is the unique identifier for the service (UUID format).
	ID string

	// Name is the display name of the service. Must not be empty.
	Name string

	// Price is the current price in currency units. Never negative.
	// Changing it does not affect appointments already booked.
	Price float64

	// Duration is the expected length of the service in minutes.
	Duration int

	// Description is an optional free-form description.
	Description string

	// CreatedAt is the Unix timestamp when the service was created.
	CreatedAt int64
}
