package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/internal/models"
	"github.com/mmynk/salonbook/internal/storage"
	"github.com/mmynk/salonbook/pkg/api"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
)

var _ apiconnect.CatalogServiceHandler = (*CatalogService)(nil)

// CatalogService implements the Connect CatalogService
type CatalogService struct {
	store storage.Store
}

// NewCatalogService creates a new CatalogService with the given storage backend.
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// validateService checks the editable fields of a service.
func validateService(name string, price float64, duration int32) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("service name is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return nil
}

// ListServices returns the whole catalog.
func (s *CatalogService) ListServices(ctx context.Context, req *connect.Request[api.ListServicesRequest]) (*connect.Response[api.ListServicesResponse], error) {
	services, err := s.store.ListServices(ctx)
	if err != nil {
		slog.Error("ListServices failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Service, len(services))
	for i, svc := range services {
		out[i] = toAPIService(svc)
	}
	return connect.NewResponse(&api.ListServicesResponse{Services: out}), nil
}

// CreateService adds a service to the catalog.
func (s *CatalogService) CreateService(ctx context.Context, req *connect.Request[api.CreateServiceRequest]) (*connect.Response[api.CreateServiceResponse], error) {
	if err := validateService(req.Msg.Name, req.Msg.Price, req.Msg.Duration); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	svc := &models.Service{
		Name:        strings.TrimSpace(req.Msg.Name),
		Price:       req.Msg.Price,
		Duration:    int(req.Msg.Duration),
		Description: strings.TrimSpace(req.Msg.Description),
	}
	if err := s.store.CreateService(ctx, svc); err != nil {
		slog.Error("CreateService failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Service created", "service_id", svc.ID, "name", svc.Name, "price", svc.Price)
	return connect.NewResponse(&api.CreateServiceResponse{Service: toAPIService(*svc)}), nil
}

// UpdateService edits a service. Existing appointments keep their totals.
func (s *CatalogService) UpdateService(ctx context.Context, req *connect.Request[api.UpdateServiceRequest]) (*connect.Response[api.UpdateServiceResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument("service id is required")
	}
	if err := validateService(req.Msg.Name, req.Msg.Price, req.Msg.Duration); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	svc, err := s.store.GetService(ctx, req.Msg.Id)
	if err != nil {
		return nil, storeError(err)
	}
	svc.Name = strings.TrimSpace(req.Msg.Name)
	svc.Price = req.Msg.Price
	svc.Duration = int(req.Msg.Duration)
	svc.Description = strings.TrimSpace(req.Msg.Description)

	if err := s.store.UpdateService(ctx, svc); err != nil {
		slog.Error("UpdateService failed", "service_id", svc.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Service updated", "service_id", svc.ID)
	return connect.NewResponse(&api.UpdateServiceResponse{Service: toAPIService(*svc)}), nil
}

// DeleteService removes a service from the catalog.
func (s *CatalogService) DeleteService(ctx context.Context, req *connect.Request[api.DeleteServiceRequest]) (*connect.Response[api.DeleteServiceResponse], error) {
	if req.Msg.Id == "" {
		return nil, invalidArgument("service id is required")
	}
	if err := s.store.DeleteService(ctx, req.Msg.Id); err != nil {
		slog.Error("DeleteService failed", "service_id", req.Msg.Id, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Service deleted", "service_id", req.Msg.Id)
	return connect.NewResponse(&api.DeleteServiceResponse{}), nil
}
