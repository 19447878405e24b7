package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/scheduler"
	"github.com/mmynk/salonbook/internal/storage"
	"github.com/mmynk/salonbook/pkg/api"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// storeError maps storage errors to Connect codes.
func storeError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrSlotTaken):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(format string, args ...any) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// validateDate checks a YYYY-MM-DD string.
func validateDate(date string) error {
	if len(date) != len(dateLayout) {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}
	return nil
}

// validateTime checks a zero-padded HH:MM string.
func validateTime(t string) error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("time must be HH:MM, got %q", t)
	}
	if _, err := time.Parse(timeLayout, t); err != nil {
		return fmt.Errorf("time must be HH:MM, got %q", t)
	}
	return nil
}

func toAPIService(s models.Service) *api.Service {
	return &api.Service{
		Id:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Duration:    int32(s.Duration),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func toAPIAppointment(a models.Appointment, catalog []models.Service) *api.Appointment {
	ids := make([]string, len(a.Services))
	copy(ids, a.Services)
	return &api.Appointment{
		Id:             a.ID,
		ClientName:     a.ClientName,
		Phone:          a.Phone,
		Date:           a.Date,
		Time:           a.Time,
		ServiceId:      a.ServiceID(),
		ServiceIds:     ids,
		PaymentMethod:  a.PaymentMethod,
		Notes:          a.Notes,
		TotalPrice:     a.TotalPrice,
		EffectivePrice: scheduler.EffectivePrice(a, catalog),
		Attended:       a.Attended,
		CreatedAt:      a.CreatedAt,
	}
}

func toAPISummary(selectedDate string, s scheduler.Summary) *api.Summary {
	return &api.Summary{
		SelectedDate: selectedDate,
		DayCount:     int32(s.DayCount),
		DayTotal:     s.DayTotal,
		MonthTotal:   s.MonthTotal,
	}
}

// bundleFromIDs trims the ids and validates the resulting bundle.
func bundleFromIDs(ids []string) (models.Bundle, error) {
	bundle := make(models.Bundle, 0, len(ids))
	for _, id := range ids {
		bundle = append(bundle, strings.TrimSpace(id))
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}
