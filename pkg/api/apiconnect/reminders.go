package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/mmynk/salonbook/pkg/api"
)

// ReminderServiceName is the fully-qualified name of the ReminderService.
const ReminderServiceName = "salonbook.v1.ReminderService"

// Procedure paths of the ReminderService.
const (
	ReminderServiceComposeReminderProcedure = "/salonbook.v1.ReminderService/ComposeReminder"
	ReminderServiceSendReminderProcedure    = "/salonbook.v1.ReminderService/SendReminder"
)

// ReminderServiceHandler is implemented by the server side of the ReminderService, which builds and sends appointment reminders.
type ReminderServiceHandler interface {
	ComposeReminder(context.Context, *connect.Request[api.ComposeReminderRequest]) (*connect.Response[api.ComposeReminderResponse], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

// NewReminderServiceHandler builds an HTTP handler for the ReminderService.
// It returns the path to mount the handler on.
func NewReminderServiceHandler(svc ReminderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	composeReminderHandler := connect.NewUnaryHandler(ReminderServiceComposeReminderProcedure, svc.ComposeReminder, opts...)
	sendReminderHandler := connect.NewUnaryHandler(ReminderServiceSendReminderProcedure, svc.SendReminder, opts...)
	return "/" + ReminderServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReminderServiceComposeReminderProcedure:
			composeReminderHandler.ServeHTTP(w, r)
		case ReminderServiceSendReminderProcedure:
			sendReminderHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ReminderServiceClient is a client for the ReminderService.
type ReminderServiceClient interface {
	ComposeReminder(context.Context, *connect.Request[api.ComposeReminderRequest]) (*connect.Response[api.ComposeReminderResponse], error)
	SendReminder(context.Context, *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error)
}

// NewReminderServiceClient constructs a client for the ReminderService at baseURL
// (for example, http://localhost:8080).
func NewReminderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReminderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &reminderServiceClient{
		composeReminder: connect.NewClient[api.ComposeReminderRequest, api.ComposeReminderResponse](httpClient, baseURL+ReminderServiceComposeReminderProcedure, opts...),
		sendReminder:    connect.NewClient[api.SendReminderRequest, api.SendReminderResponse](httpClient, baseURL+ReminderServiceSendReminderProcedure, opts...),
	}
}

type reminderServiceClient struct {
	composeReminder *connect.Client[api.ComposeReminderRequest, api.ComposeReminderResponse]
	sendReminder    *connect.Client[api.SendReminderRequest, api.SendReminderResponse]
}

func (c *reminderServiceClient) ComposeReminder(ctx context.Context, req *connect.Request[api.ComposeReminderRequest]) (*connect.Response[api.ComposeReminderResponse], error) {
	return c.composeReminder.CallUnary(ctx, req)
}

func (c *reminderServiceClient) SendReminder(ctx context.Context, req *connect.Request[api.SendReminderRequest]) (*connect.Response[api.SendReminderResponse], error) {
	return c.sendReminder.CallUnary(ctx, req)
}
