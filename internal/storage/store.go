// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/salonbook/internal/models"
)

var (
	// ErrNotFound is returned when a service or appointment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlotTaken is returned when another appointment already occupies
	// the same date and time.
	ErrSlotTaken = errors.New("time slot already booked")
)

// Store defines the interface for service and appointment storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListServices returns every service, ordered by name.
	ListServices(ctx context.Context) ([]models.Service, error)

	// GetService retrieves a service by its ID.
	// Returns ErrNotFound if the service does not exist.
	GetService(ctx context.Context, serviceID string) (*models.Service, error)

	// CreateService persists a new service.
	// The service.ID and CreatedAt fields will be populated by the store.
	CreateService(ctx context.Context, service *models.Service) error

	// UpdateService updates an existing service.
	// Returns ErrNotFound if the service does not exist.
	UpdateService(ctx context.Context, service *models.Service) error

	// DeleteService removes a service. Appointments that bundled it keep
	// their price snapshot.
	DeleteService(ctx context.Context, serviceID string) error

	// ListAppointments returns every appointment with its bundle, ordered
	// by date and time.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// GetAppointment retrieves an appointment by its ID.
	// Returns ErrNotFound if the appointment does not exist.
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)

	// CreateAppointment persists a new appointment and links its bundle.
	// The appointment.ID and CreatedAt fields will be populated by the store.
	// Returns ErrSlotTaken if the date and time are already booked.
	CreateAppointment(ctx context.Context, appt *models.Appointment) error

	// UpdateAppointment replaces an appointment and its bundle links.
	// Returns ErrNotFound or ErrSlotTaken.
	UpdateAppointment(ctx context.Context, appt *models.Appointment) error

	// DeleteAppointment removes an appointment and its links.
	DeleteAppointment(ctx context.Context, appointmentID string) error

	// SetAttended records whether the client showed up.
	SetAttended(ctx context.Context, appointmentID string, attended bool) error

	// Close releases any resources held by the store.
	Close() error
}
