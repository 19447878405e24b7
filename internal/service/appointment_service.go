package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/scheduler"
	"github.com/mmynk/salonbook/internal/storage"
	"github.com/mmynk/salonbook/pkg/api"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
)

var _ apiconnect.AppointmentServiceHandler = (*AppointmentService)(nil)

// AppointmentService implements the Connect AppointmentService
type AppointmentService struct {
	store storage.Store
	hours scheduler.WorkingHours
}

// NewAppointmentService creates a new AppointmentService offering slots
// within hours.
func NewAppointmentService(store storage.Store, hours scheduler.WorkingHours) *AppointmentService {
	return &AppointmentService{store: store, hours: hours}
}

// appointmentFromInput validates the form fields and builds the appointment
// they describe. Price and identity are filled in by the caller.
func appointmentFromInput(in *api.AppointmentInput) (models.Appointment, error) {
	if in == nil {
		return models.Appointment{}, errors.New("appointment is required")
	}
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return models.Appointment{}, errors.New("client name is required")
	}
	bundle, err := bundleFromIDs(in.ServiceIds)
	if err != nil {
		return models.Appointment{}, err
	}
	if err := validateDate(in.Date); err != nil {
		return models.Appointment{}, err
	}
	if err := validateTime(in.Time); err != nil {
		return models.Appointment{}, err
	}
	if in.TotalPrice < 0 {
		return models.Appointment{}, errors.New("total price cannot be negative")
	}

	return models.Appointment{
		ClientName:    name,
		Phone:         strings.TrimSpace(in.Phone),
		Date:          in.Date,
		Time:          in.Time,
		Services:      bundle,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),
		TotalPrice:    in.TotalPrice,
	}, nil
}

// checkBundle verifies every bundled service exists in the catalog.
func checkBundle(bundle models.Bundle, catalog []models.Service) error {
	known := make(map[string]bool, len(catalog))
	for _, svc := range catalog {
		known[svc.ID] = true
	}
	for _, id := range bundle {
		if !known[id] {
			return fmt.Errorf("unknown service %q", id)
		}
	}
	return nil
}

// prepare runs the checks shared by create and update: bundle against the
// catalog, slot availability (ignoring excludeID) and the price snapshot.
// It returns the catalog for response conversion.
func (s *AppointmentService) prepare(ctx context.Context, appt *models.Appointment, excludeID string) ([]models.Service, error) {
	catalog, err := s.store.ListServices(ctx)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		return nil, storeError(err)
	}
	if err := checkBundle(appt.Services, catalog); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		slog.Error("Failed to load appointments", "error", err)
		return nil, storeError(err)
	}
	if !scheduler.IsSlotFree(appts, appt.Date, appt.Time, excludeID) {
		slog.Info("Slot already booked", "date", appt.Date, "time", appt.Time)
		return nil, connect.NewError(connect.CodeAlreadyExists,
			fmt.Errorf("%s at %s is already booked", appt.Date, appt.Time))
	}

	if appt.TotalPrice == 0 {
		appt.TotalPrice = scheduler.BundleTotal(appt.Services, catalog)
	}
	return catalog, nil
}

// ListAppointments returns all appointments, or those of one date.
func (s *AppointmentService) ListAppointments(ctx context.Context, req *connect.Request[api.ListAppointmentsRequest]) (*connect.Response[api.ListAppointmentsResponse], error) {
	if req.Msg.Date != "" {
		if err := validateDate(req.Msg.Date); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		slog.Error("ListAppointments failed", "error", err)
		return nil, storeError(err)
	}
	catalog, err := s.store.ListServices(ctx)
	if err != nil {
		slog.Error("ListAppointments failed to load catalog", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Appointment, 0, len(appts))
	for _, appt := range appts {
		if req.Msg.Date != "" && appt.Date != req.Msg.Date {
			continue
		}
		out = append(out, toAPIAppointment(appt, catalog))
	}
	return connect.NewResponse(&api.ListAppointmentsResponse{Appointments: out}), nil
}

// CreateAppointment books a new appointment.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req *connect.Request[api.CreateAppointmentRequest]) (*connect.Response[api.CreateAppointmentResponse], error) {
	appt, err := appointmentFromInput(req.Msg.Appointment)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	catalog, err := s.prepare(ctx, &appt, "")
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateAppointment(ctx, &appt); err != nil {
		slog.Error("CreateAppointment failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Appointment created",
		"appointment_id", appt.ID,
		"date", appt.Date,
		"time", appt.Time,
		"services", len(appt.Services),
		"total", appt.TotalPrice,
	)
	return connect.NewResponse(&api.CreateAppointmentResponse{
		Appointment: toAPIAppointment(appt, catalog),
	}), nil
}

// UpdateAppointment edits an appointment in place. Its own slot does not
// count as a conflict.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, req *connect.Request[api.UpdateAppointmentRequest]) (*connect.Response[api.UpdateAppointmentResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument("appointment id is required")
	}
	appt, err := appointmentFromInput(req.Msg.Appointment)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	existing, err := s.store.GetAppointment(ctx, req.Msg.Id)
	if err != nil {
		return nil, storeError(err)
	}
	appt.ID = existing.ID
	appt.Attended = existing.Attended
	appt.CreatedAt = existing.CreatedAt

	catalog, err := s.prepare(ctx, &appt, existing.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateAppointment(ctx, &appt); err != nil {
		slog.Error("UpdateAppointment failed", "appointment_id", appt.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Appointment updated", "appointment_id", appt.ID, "date", appt.Date, "time", appt.Time)
	return connect.NewResponse(&api.UpdateAppointmentResponse{
		Appointment: toAPIAppointment(appt, catalog),
	}), nil
}

// DeleteAppointment cancels an appointment and frees its slot.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, req *connect.Request[api.DeleteAppointmentRequest]) (*connect.Response[api.DeleteAppointmentResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument("appointment id is required")
	}
	if err := s.store.DeleteAppointment(ctx, req.Msg.Id); err != nil {
		slog.Error("DeleteAppointment failed", "appointment_id", req.Msg.Id, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Appointment deleted", "appointment_id", req.Msg.Id)
	return connect.NewResponse(&api.DeleteAppointmentResponse{}), nil
}

// SetAttended marks whether the client showed up.
func (s *AppointmentService) SetAttended(ctx context.Context, req *connect.Request[api.SetAttendedRequest]) (*connect.Response[api.SetAttendedResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument("appointment id is required")
	}
	if err := s.store.SetAttended(ctx, req.Msg.Id, req.Msg.Attended); err != nil {
		slog.Error("SetAttended failed", "appointment_id", req.Msg.Id, "error", err)
		return nil, storeError(err)
	}

	slog.Debug("Attendance recorded", "appointment_id", req.Msg.Id, "attended", req.Msg.Attended)
	return connect.NewResponse(&api.SetAttendedResponse{}), nil
}

// GetBookedSlots returns the taken times of a date, sorted.
func (s *AppointmentService) GetBookedSlots(ctx context.Context, req *connect.Request[api.GetBookedSlotsRequest]) (*connect.Response[api.GetBookedSlotsResponse], error) {
	if err := validateDate(req.Msg.Date); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		slog.Error("GetBookedSlots failed", "error", err)
		return nil, storeError(err)
	}

	booked := scheduler.BookedSlots(appts, req.Msg.Date, req.Msg.ExcludeAppointmentId)
	times := make([]string, 0, len(booked))
	for t := range booked {
		times = append(times, t)
	}
	sort.Strings(times)

	return connect.NewResponse(&api.GetBookedSlotsResponse{Times: times}), nil
}

// GetTimeOptions returns the slot grid, flagging slots booked on the
// requested date.
func (s *AppointmentService) GetTimeOptions(ctx context.Context, req *connect.Request[api.GetTimeOptionsRequest]) (*connect.Response[api.GetTimeOptionsResponse], error) {
	booked := map[string]struct{}{}
	if req.Msg.Date != "" {
		if err := validateDate(req.Msg.Date); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		appts, err := s.store.ListAppointments(ctx)
		if err != nil {
			slog.Error("GetTimeOptions failed", "error", err)
			return nil, storeError(err)
		}
		booked = scheduler.BookedSlots(appts, req.Msg.Date, req.Msg.ExcludeAppointmentId)
	}

	options := scheduler.AvailableSlots(scheduler.GenerateSlots(s.hours), booked)
	slots := make([]*api.TimeSlot, len(options))
	for i, opt := range options {
		slots[i] = &api.TimeSlot{Time: opt.Time, Booked: opt.Booked}
	}
	return connect.NewResponse(&api.GetTimeOptionsResponse{Slots: slots}), nil
}
