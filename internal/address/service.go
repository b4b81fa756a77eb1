package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/NaveenSky123/manaraitubazaar/pkg/blobstore"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

// Service manages the per-session delivery address. Save validates before
// persisting so a stored address is always complete. Store failures degrade
// to in-process state rather than failing the operation.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Address, error)
	Save(ctx context.Context, sessionID string, a Address) error
	Delete(ctx context.Context, sessionID string) error
	Defaults() Address
}

type service struct {
	store blobstore.Store
	cfg   config.StoreConfig
	logg  *logger.Logger

	mu    sync.Mutex
	local map[string]*Address
}

// NewService constructs an address service instance.
func NewService(store blobstore.Store, cfg config.StoreConfig, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store: store,
		cfg:   cfg,
		logg:  logg,
		local: make(map[string]*Address),
	}, nil
}

// Defaults returns the empty edit form with the village prefilled to the
// branch locality.
func (s *service) Defaults() Address {
	return Address{Village: s.cfg.DefaultVillage}
}

// Get returns the saved address, or nil when the session has none.
func (s *service) Get(ctx context.Context, sessionID string) (*Address, error) {
	raw, err := s.store.Get(ctx, blobstore.AddressKey(sessionID))
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "address store read failed, using in-memory state")
			return s.localCopy(sessionID), nil
		}
		return nil, nil
	}
	var a Address
	if err := json.Unmarshal(raw, &a); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable address snapshot")
		return nil, nil
	}
	return &a, nil
}

func (s *service) Save(ctx context.Context, sessionID string, a Address) error {
	trimmed := Trimmed(a)
	if errs := Validate(trimmed); len(errs) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "address is incomplete").WithDetails(errs)
	}

	s.setLocal(sessionID, &trimmed)
	raw, err := json.Marshal(trimmed)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding address")
	}
	if err := s.store.Put(ctx, blobstore.AddressKey(sessionID), raw); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "address store write failed, continuing in memory")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, sessionID string) error {
	s.setLocal(sessionID, nil)
	if err := s.store.Delete(ctx, blobstore.AddressKey(sessionID)); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "address store delete failed, continuing in memory")
	}
	return nil
}

func (s *service) localCopy(sessionID string) *Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.local[sessionID]; ok && a != nil {
		copied := *a
		return &copied
	}
	return nil
}

func (s *service) setLocal(sessionID string, a *Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == nil {
		delete(s.local, sessionID)
		return
	}
	copied := *a
	s.local[sessionID] = &copied
}
