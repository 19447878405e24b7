package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/internal/messaging"
	"github.com/mmynk/salonbook/internal/scheduler"
	"github.com/mmynk/salonbook/internal/storage/sqlite"
	"github.com/mmynk/salonbook/pkg/api"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
)

const testTemplate = "{{.ClientName}} {{.Date}} {{.Time}} {{.Services}} {{.Total}}"

// testClients bundles a client for every service behind one test server.
type testClients struct {
	catalog      apiconnect.CatalogServiceClient
	appointments apiconnect.AppointmentServiceClient
	calendar     apiconnect.CalendarServiceClient
	reminders    apiconnect.ReminderServiceClient
}

// setupTestServer starts all services on a temp database. sender may be nil.
func setupTestServer(t *testing.T, sender messaging.Sender) (*testClients, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	today := func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewCatalogServiceHandler(NewCatalogService(store)))
	mux.Handle(apiconnect.NewAppointmentServiceHandler(NewAppointmentService(store, scheduler.DefaultWorkingHours)))
	mux.Handle(apiconnect.NewCalendarServiceHandler(NewCalendarService(store, today)))
	mux.Handle(apiconnect.NewReminderServiceHandler(
		NewReminderService(store, messaging.NewComposer(testTemplate), sender, nil),
	))

	server := httptest.NewServer(mux)

	clients := &testClients{
		catalog:      apiconnect.NewCatalogServiceClient(http.DefaultClient, server.URL),
		appointments: apiconnect.NewAppointmentServiceClient(http.DefaultClient, server.URL),
		calendar:     apiconnect.NewCalendarServiceClient(http.DefaultClient, server.URL),
		reminders:    apiconnect.NewReminderServiceClient(http.DefaultClient, server.URL),
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

func mustCreateService(t *testing.T, c *testClients, name string, price float64) *api.Service {
	t.Helper()
	resp, err := c.catalog.CreateService(context.Background(), connect.NewRequest(&api.CreateServiceRequest{
		Name:     name,
		Price:    price,
		Duration: 30,
	}))
	if err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}
	return resp.Msg.Service
}

func mustBook(t *testing.T, c *testClients, in *api.AppointmentInput) *api.Appointment {
	t.Helper()
	resp, err := c.appointments.CreateAppointment(context.Background(), connect.NewRequest(&api.CreateAppointmentRequest{
		Appointment: in,
	}))
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	return resp.Msg.Appointment
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
