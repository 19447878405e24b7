package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/storage"
)

const appointmentColumns = `id, client_name, phone, date, time, service_id, payment_method,
	notes, total_price, attended, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAppointment reads one appointment row. The bundle is seeded with the
// primary service column and replaced by the linked services when present.
func scanAppointment(row rowScanner) (models.Appointment, error) {
	var (
		appt      models.Appointment
		serviceID string
	)
	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.Phone,
		&appt.Date,
		&appt.Time,
		&serviceID,
		&appt.PaymentMethod,
		&appt.Notes,
		&appt.TotalPrice,
		&appt.Attended,
		&appt.CreatedAt,
	)
	if err != nil {
		return appt, err
	}
	if serviceID != "" {
		appt.Services = models.Bundle{serviceID}
	}
	return appt, nil
}

// ListAppointments returns all appointments ordered by date and time.
func (s *SQLiteStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments ORDER BY date, time",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appts []models.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	links, err := s.loadLinks(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range appts {
		if bundle, ok := links[appts[i].ID]; ok {
			appts[i].Services = bundle
		}
	}
	return appts, nil
}

// GetAppointment retrieves an appointment by ID, including its bundle.
func (s *SQLiteStore) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := scanAppointment(s.db.QueryRowContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE id = ?",
		appointmentID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("appointment %s: %w", appointmentID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	links, err := s.loadLinks(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if bundle, ok := links[appointmentID]; ok {
		appt.Services = bundle
	}
	return &appt, nil
}

// loadLinks returns the bundle of every appointment that has links, keyed by
// appointment ID. An empty appointmentID loads all of them.
func (s *SQLiteStore) loadLinks(ctx context.Context, appointmentID string) (map[string]models.Bundle, error) {
	query := "SELECT appointment_id, service_id FROM appointment_services"
	var args []any
	if appointmentID != "" {
		query += " WHERE appointment_id = ?"
		args = append(args, appointmentID)
	}
	query += " ORDER BY appointment_id, position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment services: %w", err)
	}
	defer rows.Close()

	links := make(map[string]models.Bundle)
	for rows.Next() {
		var apptID, serviceID string
		if err := rows.Scan(&apptID, &serviceID); err != nil {
			return nil, fmt.Errorf("failed to scan appointment service: %w", err)
		}
		links[apptID] = append(links[apptID], serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointment services: %w", err)
	}
	return links, nil
}

// CreateAppointment persists a new appointment and its service links.
func (s *SQLiteStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt == 0 {
		appt.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO appointments ("+appointmentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		appt.ID, appt.ClientName, appt.Phone, appt.Date, appt.Time, appt.ServiceID(),
		appt.PaymentMethod, appt.Notes, appt.TotalPrice, appt.Attended, appt.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", appt.Date, appt.Time, storage.ErrSlotTaken)
	}
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	if err := insertLinks(ctx, tx, appt.ID, appt.Services); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateAppointment replaces the appointment fields and its service links.
// CreatedAt is kept from the original row.
func (s *SQLiteStore) UpdateAppointment(ctx context.Context, appt *models.Appointment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE appointments SET client_name = ?, phone = ?, date = ?, time = ?, service_id = ?,
			payment_method = ?, notes = ?, total_price = ?, attended = ?
		WHERE id = ?`,
		appt.ClientName, appt.Phone, appt.Date, appt.Time, appt.ServiceID(),
		appt.PaymentMethod, appt.Notes, appt.TotalPrice, appt.Attended, appt.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", appt.Date, appt.Time, storage.ErrSlotTaken)
	}
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if err := checkAffected(res, "appointment", appt.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM appointment_services WHERE appointment_id = ?", appt.ID); err != nil {
		return fmt.Errorf("failed to clear appointment services: %w", err)
	}
	if err := insertLinks(ctx, tx, appt.ID, appt.Services); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertLinks(ctx context.Context, tx *sql.Tx, appointmentID string, bundle models.Bundle) error {
	for position, serviceID := range bundle {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO appointment_services (appointment_id, service_id, position) VALUES (?, ?, ?)",
			appointmentID, serviceID, position,
		)
		if err != nil {
			return fmt.Errorf("failed to link service %s: %w", serviceID, err)
		}
	}
	return nil
}

// DeleteAppointment removes an appointment; its links cascade.
func (s *SQLiteStore) DeleteAppointment(ctx context.Context, appointmentID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = ?", appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return checkAffected(res, "appointment", appointmentID)
}

// SetAttended updates the attended flag of an appointment.
func (s *SQLiteStore) SetAttended(ctx context.Context, appointmentID string, attended bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE appointments SET attended = ? WHERE id = ?",
		attended, appointmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to set attended: %w", err)
	}
	return checkAffected(res, "appointment", appointmentID)
}
