package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	checkoutsvc "github.com/NaveenSky123/manaraitubazaar/internal/checkout"
	"github.com/NaveenSky123/manaraitubazaar/pkg/geo"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

// stubCheckoutService records the context it was called with.
type stubCheckoutService struct {
	lastCtx context.Context
}

func (s *stubCheckoutService) Get(ctx context.Context, sessionID string) (*checkoutsvc.View, error) {
	s.lastCtx = ctx
	return &checkoutsvc.View{}, nil
}

func (s *stubCheckoutService) Update(ctx context.Context, sessionID string, input checkoutsvc.UpdateInput) (*checkoutsvc.View, error) {
	s.lastCtx = ctx
	return &checkoutsvc.View{}, nil
}

func (s *stubCheckoutService) SetLocation(ctx context.Context, sessionID string, loc geo.Location) (*checkoutsvc.View, error) {
	s.lastCtx = ctx
	return &checkoutsvc.View{}, nil
}

func (s *stubCheckoutService) SkipLocation(ctx context.Context, sessionID string) (*checkoutsvc.View, error) {
	s.lastCtx = ctx
	return &checkoutsvc.View{}, nil
}

func (s *stubCheckoutService) Submit(ctx context.Context, sessionID string) (*checkoutsvc.SubmitResult, error) {
	s.lastCtx = ctx
	return &checkoutsvc.SubmitResult{}, nil
}

func postLocation(t *testing.T, handler http.HandlerFunc, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/checkout/location", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler(resp, req)
	return resp
}

func TestSetLocationAppliesConfiguredDeadline(t *testing.T) {
	t.Parallel()

	logg := logger.New(logger.Options{ServiceName: "test-controllers", Level: logger.ParseLevel("debug"), Output: io.Discard})
	svc := &stubCheckoutService{}
	timeout := 10 * time.Second
	handler := CheckoutSetLocation(svc, timeout, logg)

	before := time.Now()
	resp := postLocation(t, handler, map[string]any{"latitude": 18.82, "longitude": 78.47})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	deadline, ok := svc.lastCtx.Deadline()
	if !ok {
		t.Fatal("expected a deadline on the service context")
	}
	if remaining := deadline.Sub(before); remaining > timeout {
		t.Fatalf("deadline %v exceeds configured timeout %v", remaining, timeout)
	}
}

func TestSetLocationSkipSharesDeadline(t *testing.T) {
	t.Parallel()

	logg := logger.New(logger.Options{ServiceName: "test-controllers", Level: logger.ParseLevel("debug"), Output: io.Discard})
	svc := &stubCheckoutService{}
	handler := CheckoutSetLocation(svc, 10*time.Second, logg)

	resp := postLocation(t, handler, map[string]any{"skip": true})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if _, ok := svc.lastCtx.Deadline(); !ok {
		t.Fatal("expected a deadline on the service context")
	}
}

func TestSetLocationZeroTimeoutLeavesContextUnbounded(t *testing.T) {
	t.Parallel()

	logg := logger.New(logger.Options{ServiceName: "test-controllers", Level: logger.ParseLevel("debug"), Output: io.Discard})
	svc := &stubCheckoutService{}
	handler := CheckoutSetLocation(svc, 0, logg)

	resp := postLocation(t, handler, map[string]any{"latitude": 18.82, "longitude": 78.47})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if _, ok := svc.lastCtx.Deadline(); ok {
		t.Fatal("expected no deadline when the timeout is unset")
	}
}
