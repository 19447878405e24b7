package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/mmynk/salonbook/pkg/api"
)

// AppointmentServiceName is the fully-qualified name of the AppointmentService.
const AppointmentServiceName = "salonbook.v1.AppointmentService"

// Procedure paths of the AppointmentService.
const (
	AppointmentServiceListAppointmentsProcedure  = "/salonbook.v1.AppointmentService/ListAppointments"
	AppointmentServiceCreateAppointmentProcedure = "/salonbook.v1.AppointmentService/CreateAppointment"
	AppointmentServiceUpdateAppointmentProcedure = "/salonbook.v1.AppointmentService/UpdateAppointment"
	AppointmentServiceDeleteAppointmentProcedure = "/salonbook.v1.AppointmentService/DeleteAppointment"
	AppointmentServiceSetAttendedProcedure       = "/salonbook.v1.AppointmentService/SetAttended"
	AppointmentServiceGetBookedSlotsProcedure    = "/salonbook.v1.AppointmentService/GetBookedSlots"
	AppointmentServiceGetTimeOptionsProcedure    = "/salonbook.v1.AppointmentService/GetTimeOptions"
)

// AppointmentServiceHandler is implemented by the server side of the AppointmentService, which books, edits and lists appointments.
type AppointmentServiceHandler interface {
	ListAppointments(context.Context, *connect.Request[api.ListAppointmentsRequest]) (*connect.Response[api.ListAppointmentsResponse], error)
	CreateAppointment(context.Context, *connect.Request[api.CreateAppointmentRequest]) (*connect.Response[api.CreateAppointmentResponse], error)
	UpdateAppointment(context.Context, *connect.Request[api.UpdateAppointmentRequest]) (*connect.Response[api.UpdateAppointmentResponse], error)
	DeleteAppointment(context.Context, *connect.Request[api.DeleteAppointmentRequest]) (*connect.Response[api.DeleteAppointmentResponse], error)
	SetAttended(context.Context, *connect.Request[api.SetAttendedRequest]) (*connect.Response[api.SetAttendedResponse], error)
	GetBookedSlots(context.Context, *connect.Request[api.GetBookedSlotsRequest]) (*connect.Response[api.GetBookedSlotsResponse], error)
	GetTimeOptions(context.Context, *connect.Request[api.GetTimeOptionsRequest]) (*connect.Response[api.GetTimeOptionsResponse], error)
}

// NewAppointmentServiceHandler builds an HTTP handler for the AppointmentService.
// It returns the path to mount the handler on.
func NewAppointmentServiceHandler(svc AppointmentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listAppointmentsHandler := connect.NewUnaryHandler(AppointmentServiceListAppointmentsProcedure, svc.ListAppointments, opts...)
	createAppointmentHandler := connect.NewUnaryHandler(AppointmentServiceCreateAppointmentProcedure, svc.CreateAppointment, opts...)
	updateAppointmentHandler := connect.NewUnaryHandler(AppointmentServiceUpdateAppointmentProcedure, svc.UpdateAppointment, opts...)
	deleteAppointmentHandler := connect.NewUnaryHandler(AppointmentServiceDeleteAppointmentProcedure, svc.DeleteAppointment, opts...)
	setAttendedHandler := connect.NewUnaryHandler(AppointmentServiceSetAttendedProcedure, svc.SetAttended, opts...)
	getBookedSlotsHandler := connect.NewUnaryHandler(AppointmentServiceGetBookedSlotsProcedure, svc.GetBookedSlots, opts...)
	getTimeOptionsHandler := connect.NewUnaryHandler(AppointmentServiceGetTimeOptionsProcedure, svc.GetTimeOptions, opts...)
	return "/" + AppointmentServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AppointmentServiceListAppointmentsProcedure:
			listAppointmentsHandler.ServeHTTP(w, r)
		case AppointmentServiceCreateAppointmentProcedure:
			createAppointmentHandler.ServeHTTP(w, r)
		case AppointmentServiceUpdateAppointmentProcedure:
			updateAppointmentHandler.ServeHTTP(w, r)
		case AppointmentServiceDeleteAppointmentProcedure:
			deleteAppointmentHandler.ServeHTTP(w, r)
		case AppointmentServiceSetAttendedProcedure:
			setAttendedHandler.ServeHTTP(w, r)
		case AppointmentServiceGetBookedSlotsProcedure:
			getBookedSlotsHandler.ServeHTTP(w, r)
		case AppointmentServiceGetTimeOptionsProcedure:
			getTimeOptionsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AppointmentServiceClient is a client for the AppointmentService.
type AppointmentServiceClient interface {
	ListAppointments(context.Context, *connect.Request[api.ListAppointmentsRequest]) (*connect.Response[api.ListAppointmentsResponse], error)
	CreateAppointment(context.Context, *connect.Request[api.CreateAppointmentRequest]) (*connect.Response[api.CreateAppointmentResponse], error)
	UpdateAppointment(context.Context, *connect.Request[api.UpdateAppointmentRequest]) (*connect.Response[api.UpdateAppointmentResponse], error)
	DeleteAppointment(context.Context, *connect.Request[api.DeleteAppointmentRequest]) (*connect.Response[api.DeleteAppointmentResponse], error)
	SetAttended(context.Context, *connect.Request[api.SetAttendedRequest]) (*connect.Response[api.SetAttendedResponse], error)
	GetBookedSlots(context.Context, *connect.Request[api.GetBookedSlotsRequest]) (*connect.Response[api.GetBookedSlotsResponse], error)
	GetTimeOptions(context.Context, *connect.Request[api.GetTimeOptionsRequest]) (*connect.Response[api.GetTimeOptionsResponse], error)
}

// NewAppointmentServiceClient constructs a client for the AppointmentService at baseURL
// (for example, http://localhost:8080).
func NewAppointmentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AppointmentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &appointmentServiceClient{
		listAppointments:  connect.NewClient[api.ListAppointmentsRequest, api.ListAppointmentsResponse](httpClient, baseURL+AppointmentServiceListAppointmentsProcedure, opts...),
		createAppointment: connect.NewClient[api.CreateAppointmentRequest, api.CreateAppointmentResponse](httpClient, baseURL+AppointmentServiceCreateAppointmentProcedure, opts...),
		updateAppointment: connect.NewClient[api.UpdateAppointmentRequest, api.UpdateAppointmentResponse](httpClient, baseURL+AppointmentServiceUpdateAppointmentProcedure, opts...),
		deleteAppointment: connect.NewClient[api.DeleteAppointmentRequest, api.DeleteAppointmentResponse](httpClient, baseURL+AppointmentServiceDeleteAppointmentProcedure, opts...),
		setAttended:       connect.NewClient[api.SetAttendedRequest, api.SetAttendedResponse](httpClient, baseURL+AppointmentServiceSetAttendedProcedure, opts...),
		getBookedSlots:    connect.NewClient[api.GetBookedSlotsRequest, api.GetBookedSlotsResponse](httpClient, baseURL+AppointmentServiceGetBookedSlotsProcedure, opts...),
		getTimeOptions:    connect.NewClient[api.GetTimeOptionsRequest, api.GetTimeOptionsResponse](httpClient, baseURL+AppointmentServiceGetTimeOptionsProcedure, opts...),
	}
}

type appointmentServiceClient struct {
	listAppointments  *connect.Client[api.ListAppointmentsRequest, api.ListAppointmentsResponse]
	createAppointment *connect.Client[api.CreateAppointmentRequest, api.CreateAppointmentResponse]
	updateAppointment *connect.Client[api.UpdateAppointmentRequest, api.UpdateAppointmentResponse]
	deleteAppointment *connect.Client[api.DeleteAppointmentRequest, api.DeleteAppointmentResponse]
	setAttended       *connect.Client[api.SetAttendedRequest, api.SetAttendedResponse]
	getBookedSlots    *connect.Client[api.GetBookedSlotsRequest, api.GetBookedSlotsResponse]
	getTimeOptions    *connect.Client[api.GetTimeOptionsRequest, api.GetTimeOptionsResponse]
}

func (c *appointmentServiceClient) ListAppointments(ctx context.Context, req *connect.Request[api.ListAppointmentsRequest]) (*connect.Response[api.ListAppointmentsResponse], error) {
	return c.listAppointments.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) CreateAppointment(ctx context.Context, req *connect.Request[api.CreateAppointmentRequest]) (*connect.Response[api.CreateAppointmentResponse], error) {
	return c.createAppointment.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) UpdateAppointment(ctx context.Context, req *connect.Request[api.UpdateAppointmentRequest]) (*connect.Response[api.UpdateAppointmentResponse], error) {
	return c.updateAppointment.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) DeleteAppointment(ctx context.Context, req *connect.Request[api.DeleteAppointmentRequest]) (*connect.Response[api.DeleteAppointmentResponse], error) {
	return c.deleteAppointment.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) SetAttended(ctx context.Context, req *connect.Request[api.SetAttendedRequest]) (*connect.Response[api.SetAttendedResponse], error) {
	return c.setAttended.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) GetBookedSlots(ctx context.Context, req *connect.Request[api.GetBookedSlotsRequest]) (*connect.Response[api.GetBookedSlotsResponse], error) {
	return c.getBookedSlots.CallUnary(ctx, req)
}

func (c *appointmentServiceClient) GetTimeOptions(ctx context.Context, req *connect.Request[api.GetTimeOptionsRequest]) (*connect.Response[api.GetTimeOptionsResponse], error) {
	return c.getTimeOptions.CallUnary(ctx, req)
}
