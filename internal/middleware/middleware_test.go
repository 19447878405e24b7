package middleware

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type pingMsg struct{}

func okHandler(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
	return connect.NewResponse(&pingMsg{}), nil
}

func TestRequestIDInterceptor(t *testing.T) {
	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetRequestID(ctx)
		return okHandler(ctx, req)
	}
	handler := RequestIDInterceptor()(next)

	t.Run("keeps incoming header", func(t *testing.T) {
		req := connect.NewRequest(&pingMsg{})
		req.Header().Set(RequestIDHeader, "req-123")

		resp, err := handler(context.Background(), req)
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if seen != "req-123" {
			t.Errorf("context request id = %q, want req-123", seen)
		}
		if got := resp.Header().Get(RequestIDHeader); got != "req-123" {
			t.Errorf("response header = %q, want req-123", got)
		}
	})

	t.Run("generates one when missing", func(t *testing.T) {
		resp, err := handler(context.Background(), connect.NewRequest(&pingMsg{}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if seen == "" {
			t.Error("expected a generated request id")
		}
		if resp.Header().Get(RequestIDHeader) != seen {
			t.Errorf("response header %q does not match context %q", resp.Header().Get(RequestIDHeader), seen)
		}
	})
}

func TestGetRequestID_Empty(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ok := m.Interceptor()(okHandler)
	failing := m.Interceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeAlreadyExists, errors.New("slot taken"))
	})

	for i := 0; i < 2; i++ {
		if _, err := ok(context.Background(), connect.NewRequest(&pingMsg{})); err != nil {
			t.Fatalf("ok handler failed: %v", err)
		}
	}
	if _, err := failing(context.Background(), connect.NewRequest(&pingMsg{})); err == nil {
		t.Fatal("expected error from failing handler")
	}

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("", "ok")); got != 2 {
		t.Errorf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("", "already_exists")); got != 1 {
		t.Errorf("already_exists count = %v, want 1", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	handler := m.Interceptor()(okHandler)
	if _, err := handler(context.Background(), connect.NewRequest(&pingMsg{})); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
}
