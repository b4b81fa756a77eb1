package address

import (
	"context"
	"io"
	"testing"

	"github.com/NaveenSky123/manaraitubazaar/pkg/blobstore"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(
		blobstore.NewMemory(),
		config.StoreConfig{DefaultVillage: "Morthad", PinCode: "503225"},
		logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSaveAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.Save(ctx, "s1", validAddress()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.FullName != "Ramesh Kumar" {
		t.Fatalf("unexpected address %+v", got)
	}
}

func TestSaveTrimsFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	a := validAddress()
	a.FullName = "  Ramesh Kumar  "
	if err := svc.Save(ctx, "s1", a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != "Ramesh Kumar" {
		t.Fatalf("expected trimmed name, got %q", got.FullName)
	}
}

func TestSaveRejectsIncomplete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	a := validAddress()
	a.Street = ""
	err := svc.Save(ctx, "s1", a)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["street"] != "Street is required" {
		t.Fatalf("expected field errors in details, got %v", typed.Details())
	}

	// Nothing partial may be stored.
	if got, _ := svc.Get(ctx, "s1"); got != nil {
		t.Fatalf("expected no persisted address, got %+v", got)
	}
}

func TestDeleteRemovesAddress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	if err := svc.Save(ctx, "s1", validAddress()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := svc.Get(ctx, "s1"); got != nil {
		t.Fatalf("expected deleted address, got %+v", got)
	}
}

func TestDefaultsPrefillVillage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	defaults := svc.Defaults()
	if defaults.Village != "Morthad" {
		t.Fatalf("expected default village Morthad, got %q", defaults.Village)
	}
	if defaults.FullName != "" {
		t.Fatalf("expected empty form otherwise, got %+v", defaults)
	}
}
