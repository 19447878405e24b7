package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/salonbook/internal/messaging"
	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/storage"
	"github.com/mmynk/salonbook/pkg/api"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
)

var _ apiconnect.ReminderServiceHandler = (*ReminderService)(nil)

// ReminderService implements the Connect ReminderService
type ReminderService struct {
	store    storage.Store
	composer *messaging.Composer
	sender   messaging.Sender // nil when no outbound channel is configured
	sent     *prometheus.CounterVec
}

// NewReminderService creates a new ReminderService. sender may be nil, in
// which case reminders can be composed but not sent. Metrics are registered
// on reg when it is non-nil.
func NewReminderService(store storage.Store, composer *messaging.Composer, sender messaging.Sender, reg prometheus.Registerer) *ReminderService {
	s := &ReminderService{store: store, composer: composer, sender: sender}
	if reg != nil {
		s.sent = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbook",
			Subsystem: "reminders",
			Name:      "sent_total",
			Help:      "Reminders handed to the outbound channel",
		}, []string{"provider", "status"})
		reg.MustRegister(s.sent)
	}
	return s
}

func (s *ReminderService) observe(provider, status string) {
	if s.sent == nil {
		return
	}
	s.sent.WithLabelValues(provider, status).Inc()
}

// compose loads an appointment and renders its reminder.
func (s *ReminderService) compose(ctx context.Context, appointmentID string) (*models.Appointment, string, error) {
	if appointmentID == "" {
		return nil, "", invalidArgument("appointment id is required")
	}
	appt, err := s.store.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, "", storeError(err)
	}
	catalog, err := s.store.ListServices(ctx)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		return nil, "", storeError(err)
	}

	message, err := s.composer.Compose(*appt, catalog)
	if err != nil {
		slog.Error("Reminder template failed", "appointment_id", appointmentID, "error", err)
		return nil, "", connect.NewError(connect.CodeInternal, err)
	}
	return appt, message, nil
}

// ComposeReminder renders the reminder text and a chat link for the client.
func (s *ReminderService) ComposeReminder(ctx context.Context, req *connect.Request[api.ComposeReminderRequest]) (*connect.Response[api.ComposeReminderResponse], error) {
	appt, message, err := s.compose(ctx, req.Msg.AppointmentId)
	if err != nil {
		return nil, err
	}

	link, err := messaging.WhatsAppLink(appt.Phone, message)
	if err != nil && !errors.Is(err, messaging.ErrNoPhone) {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ComposeReminderResponse{Message: message, Link: link}), nil
}

// SendReminder hands the reminder to the configured outbound channel.
func (s *ReminderService) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	if s.sender == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("no reminder channel configured"))
	}

	appt, message, err := s.compose(ctx, req.Msg.AppointmentId)
	if err != nil {
		return nil, err
	}
	to := messaging.PhoneDigits(appt.Phone)
	if to == "" {
		return nil, connect.NewError(connect.CodeFailedPrecondition, messaging.ErrNoPhone)
	}

	provider := s.sender.ProviderID()
	if err := s.sender.Send(ctx, to, message); err != nil {
		s.observe(provider, "failed")
		slog.Error("SendReminder failed", "appointment_id", appt.ID, "provider", provider, "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("reminder not sent: %w", err))
	}
	s.observe(provider, "sent")

	slog.Info("Reminder sent", "appointment_id", appt.ID, "provider", provider)
	return connect.NewResponse(&api.SendReminderResponse{Provider: provider}), nil
}
