package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/mmynk/salonbook/pkg/api"
)

// CatalogServiceName is the fully-qualified name of the CatalogService.
const CatalogServiceName = "salonbook.v1.CatalogService"

// Procedure paths of the CatalogService.
const (
	CatalogServiceListServicesProcedure  = "/salonbook.v1.CatalogService/ListServices"
	CatalogServiceCreateServiceProcedure = "/salonbook.v1.CatalogService/CreateService"
	CatalogServiceUpdateServiceProcedure = "/salonbook.v1.CatalogService/UpdateService"
	CatalogServiceDeleteServiceProcedure = "/salonbook.v1.CatalogService/DeleteService"
)

// CatalogServiceHandler is implemented by the server side of the CatalogService, which manages the services offered.
type CatalogServiceHandler interface {
	ListServices(context.Context, *connect.Request[api.ListServicesRequest]) (*connect.Response[api.ListServicesResponse], error)
	CreateService(context.Context, *connect.Request[api.CreateServiceRequest]) (*connect.Response[api.CreateServiceResponse], error)
	UpdateService(context.Context, *connect.Request[api.UpdateServiceRequest]) (*connect.Response[api.UpdateServiceResponse], error)
	DeleteService(context.Context, *connect.Request[api.DeleteServiceRequest]) (*connect.Response[api.DeleteServiceResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler for the CatalogService.
// It returns the path to mount the handler on.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	listServicesHandler := connect.NewUnaryHandler(CatalogServiceListServicesProcedure, svc.ListServices, opts...)
	createServiceHandler := connect.NewUnaryHandler(CatalogServiceCreateServiceProcedure, svc.CreateService, opts...)
	updateServiceHandler := connect.NewUnaryHandler(CatalogServiceUpdateServiceProcedure, svc.UpdateService, opts...)
	deleteServiceHandler := connect.NewUnaryHandler(CatalogServiceDeleteServiceProcedure, svc.DeleteService, opts...)
	return "/" + CatalogServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceListServicesProcedure:
			listServicesHandler.ServeHTTP(w, r)
		case CatalogServiceCreateServiceProcedure:
			createServiceHandler.ServeHTTP(w, r)
		case CatalogServiceUpdateServiceProcedure:
			updateServiceHandler.ServeHTTP(w, r)
		case CatalogServiceDeleteServiceProcedure:
			deleteServiceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// CatalogServiceClient is a client for the CatalogService.
type CatalogServiceClient interface {
	ListServices(context.Context, *connect.Request[api.ListServicesRequest]) (*connect.Response[api.ListServicesResponse], error)
	CreateService(context.Context, *connect.Request[api.CreateServiceRequest]) (*connect.Response[api.CreateServiceResponse], error)
	UpdateService(context.Context, *connect.Request[api.UpdateServiceRequest]) (*connect.Response[api.UpdateServiceResponse], error)
	DeleteService(context.Context, *connect.Request[api.DeleteServiceRequest]) (*connect.Response[api.DeleteServiceResponse], error)
}

// NewCatalogServiceClient constructs a client for the CatalogService at baseURL
// (for example, http://localhost:8080).
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &catalogServiceClient{
		listServices:  connect.NewClient[api.ListServicesRequest, api.ListServicesResponse](httpClient, baseURL+CatalogServiceListServicesProcedure, opts...),
		createService: connect.NewClient[api.CreateServiceRequest, api.CreateServiceResponse](httpClient, baseURL+CatalogServiceCreateServiceProcedure, opts...),
		updateService: connect.NewClient[api.UpdateServiceRequest, api.UpdateServiceResponse](httpClient, baseURL+CatalogServiceUpdateServiceProcedure, opts...),
		deleteService: connect.NewClient[api.DeleteServiceRequest, api.DeleteServiceResponse](httpClient, baseURL+CatalogServiceDeleteServiceProcedure, opts...),
	}
}

type catalogServiceClient struct {
	listServices  *connect.Client[api.ListServicesRequest, api.ListServicesResponse]
	createService *connect.Client[api.CreateServiceRequest, api.CreateServiceResponse]
	updateService *connect.Client[api.UpdateServiceRequest, api.UpdateServiceResponse]
	deleteService *connect.Client[api.DeleteServiceRequest, api.DeleteServiceResponse]
}

func (c *catalogServiceClient) ListServices(ctx context.Context, req *connect.Request[api.ListServicesRequest]) (*connect.Response[api.ListServicesResponse], error) {
	return c.listServices.CallUnary(ctx, req)
}

func (c *catalogServiceClient) CreateService(ctx context.Context, req *connect.Request[api.CreateServiceRequest]) (*connect.Response[api.CreateServiceResponse], error) {
	return c.createService.CallUnary(ctx, req)
}

func (c *catalogServiceClient) UpdateService(ctx context.Context, req *connect.Request[api.UpdateServiceRequest]) (*connect.Response[api.UpdateServiceResponse], error) {
	return c.updateService.CallUnary(ctx, req)
}

func (c *catalogServiceClient) DeleteService(ctx context.Context, req *connect.Request[api.DeleteServiceRequest]) (*connect.Response[api.DeleteServiceResponse], error) {
	return c.deleteService.CallUnary(ctx, req)
}
