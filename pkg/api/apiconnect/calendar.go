package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/mmynk/salonbook/pkg/api"
)

// CalendarServiceName is the fully-qualified name of the CalendarService.
const CalendarServiceName = "salonbook.v1.CalendarService"

// Procedure paths of the CalendarService.
const (
	CalendarServiceGetMonthViewProcedure  = "/salonbook.v1.CalendarService/GetMonthView"
	CalendarServiceGetDaySummaryProcedure = "/salonbook.v1.CalendarService/GetDaySummary"
)

// CalendarServiceHandler is implemented by the server side of the CalendarService, which serves month grids and revenue summaries.
type CalendarServiceHandler interface {
	GetMonthView(context.Context, *connect.Request[api.GetMonthViewRequest]) (*connect.Response[api.GetMonthViewResponse], error)
	GetDaySummary(context.Context, *connect.Request[api.GetDaySummaryRequest]) (*connect.Response[api.GetDaySummaryResponse], error)
}

// NewCalendarServiceHandler builds an HTTP handler for the CalendarService.
// It returns the path to mount the handler on.
func NewCalendarServiceHandler(svc CalendarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getMonthViewHandler := connect.NewUnaryHandler(CalendarServiceGetMonthViewProcedure, svc.GetMonthView, opts...)
	getDaySummaryHandler := connect.NewUnaryHandler(CalendarServiceGetDaySummaryProcedure, svc.GetDaySummary, opts...)
	return "/" + CalendarServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CalendarServiceGetMonthViewProcedure:
			getMonthViewHandler.ServeHTTP(w, r)
		case CalendarServiceGetDaySummaryProcedure:
			getDaySummaryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// CalendarServiceClient is a client for the CalendarService.
type CalendarServiceClient interface {
	GetMonthView(context.Context, *connect.Request[api.GetMonthViewRequest]) (*connect.Response[api.GetMonthViewResponse], error)
	GetDaySummary(context.Context, *connect.Request[api.GetDaySummaryRequest]) (*connect.Response[api.GetDaySummaryResponse], error)
}

// NewCalendarServiceClient constructs a client for the CalendarService at baseURL
// (for example, http://localhost:8080).
func NewCalendarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalendarServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &calendarServiceClient{
		getMonthView:  connect.NewClient[api.GetMonthViewRequest, api.GetMonthViewResponse](httpClient, baseURL+CalendarServiceGetMonthViewProcedure, opts...),
		getDaySummary: connect.NewClient[api.GetDaySummaryRequest, api.GetDaySummaryResponse](httpClient, baseURL+CalendarServiceGetDaySummaryProcedure, opts...),
	}
}

type calendarServiceClient struct {
	getMonthView  *connect.Client[api.GetMonthViewRequest, api.GetMonthViewResponse]
	getDaySummary *connect.Client[api.GetDaySummaryRequest, api.GetDaySummaryResponse]
}

func (c *calendarServiceClient) GetMonthView(ctx context.Context, req *connect.Request[api.GetMonthViewRequest]) (*connect.Response[api.GetMonthViewResponse], error) {
	return c.getMonthView.CallUnary(ctx, req)
}

func (c *calendarServiceClient) GetDaySummary(ctx context.Context, req *connect.Request[api.GetDaySummaryRequest]) (*connect.Response[api.GetDaySummaryResponse], error) {
	return c.getDaySummary.CallUnary(ctx, req)
}
