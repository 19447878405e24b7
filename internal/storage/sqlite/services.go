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

// ListServices returns all services ordered by name.
func (s *SQLiteStore) ListServices(ctx context.Context) ([]models.Service, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, duration, description, created_at FROM services ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Duration, &svc.Description, &svc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}

// GetService retrieves a service by ID.
func (s *SQLiteStore) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc := &models.Service{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, price, duration, description, created_at FROM services WHERE id = ?",
		serviceID,
	).Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Duration, &svc.Description, &svc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service %s: %w", serviceID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

// CreateService persists a new service.
func (s *SQLiteStore) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.CreatedAt == 0 {
		svc.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO services (id, name, price, duration, description, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		svc.ID, svc.Name, svc.Price, svc.Duration, svc.Description, svc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

// UpdateService updates name, price, duration and description of a service.
func (s *SQLiteStore) UpdateService(ctx context.Context, svc *models.Service) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE services SET name = ?, price = ?, duration = ?, description = ? WHERE id = ?",
		svc.Name, svc.Price, svc.Duration, svc.Description, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return checkAffected(res, "service", svc.ID)
}

// DeleteService removes a service. Its appointment links go with it; the
// appointments themselves are untouched.
func (s *SQLiteStore) DeleteService(ctx context.Context, serviceID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return checkAffected(res, "service", serviceID)
}
