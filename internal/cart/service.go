package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/NaveenSky123/manaraitubazaar/internal/pricing"
	"github.com/NaveenSky123/manaraitubazaar/pkg/blobstore"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db/models"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
	"github.com/NaveenSky123/manaraitubazaar/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Service holds a session's selected products and prices them. One entry
// per product id; AddOrSet replaces the stored quantity rather than
// accumulating. Durable-store failures degrade to in-process state for the
// session instead of failing the mutation.
type Service interface {
	Items(ctx context.Context, sessionID string) ([]Item, error)
	AddOrSet(ctx context.Context, sessionID string, product models.Product, quantity int64) error
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int64) error
	Remove(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
	Quantity(ctx context.Context, sessionID, productID string) (int64, error)
	Summary(ctx context.Context, sessionID string) (*Summary, error)
}

type service struct {
	store    blobstore.Store
	delivery config.DeliveryConfig
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics

	mu    sync.Mutex
	local map[string]*snapshot
}

// NewService constructs a cart service instance.
func NewService(store blobstore.Store, delivery config.DeliveryConfig, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:    store,
		delivery: delivery,
		logg:     logg,
		metrics:  m,
		local:    make(map[string]*snapshot),
	}, nil
}

func (s *service) Items(ctx context.Context, sessionID string) ([]Item, error) {
	return s.load(ctx, sessionID).Items, nil
}

// AddOrSet stores the given quantity for the product, replacing any existing
// entry. A zero quantity snaps to the product minimum; a quantity below the
// minimum removes the line. The cart never stores 0 or negative quantities.
func (s *service) AddOrSet(ctx context.Context, sessionID string, product models.Product, quantity int64) error {
	if !product.Available {
		return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("%s is currently unavailable", product.Name))
	}
	if quantity == 0 {
		quantity = product.MinQuantity
	}

	snap := s.load(ctx, sessionID)
	idx := snap.find(product.ID)

	if quantity <= 0 || quantity < product.MinQuantity {
		if idx < 0 {
			return nil
		}
		snap.Items = append(snap.Items[:idx], snap.Items[idx+1:]...)
		s.persist(ctx, sessionID, snap)
		s.metrics.IncCartMutation("remove")
		return nil
	}

	if idx >= 0 {
		snap.Items[idx].Quantity = quantity
		snap.Items[idx].Product = product
	} else {
		snap.Items = append(snap.Items, Item{Product: product, Quantity: quantity})
	}

	s.persist(ctx, sessionID, snap)
	s.metrics.IncCartMutation("add")
	return nil
}

// UpdateQuantity changes an existing line. A quantity below the product's
// minimum removes the line; the cart never stores zero or negative
// quantities.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int64) error {
	snap := s.load(ctx, sessionID)
	idx := snap.find(productID)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q is not in the cart", productID))
	}

	if quantity <= 0 || quantity < snap.Items[idx].Product.MinQuantity {
		snap.Items = append(snap.Items[:idx], snap.Items[idx+1:]...)
		s.persist(ctx, sessionID, snap)
		s.metrics.IncCartMutation("remove")
		return nil
	}

	snap.Items[idx].Quantity = quantity
	s.persist(ctx, sessionID, snap)
	s.metrics.IncCartMutation("update")
	return nil
}

// Remove drops a line. Removing an id that is not in the cart is a no-op.
func (s *service) Remove(ctx context.Context, sessionID, productID string) error {
	snap := s.load(ctx, sessionID)
	idx := snap.find(productID)
	if idx < 0 {
		return nil
	}
	snap.Items = append(snap.Items[:idx], snap.Items[idx+1:]...)
	s.persist(ctx, sessionID, snap)
	s.metrics.IncCartMutation("remove")
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	s.setLocal(sessionID, nil)
	if err := s.store.Delete(ctx, blobstore.CartKey(sessionID)); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart store delete failed, continuing in memory")
	}
	s.metrics.IncCartMutation("clear")
	return nil
}

// Quantity returns the stored quantity for a product, zero when absent.
func (s *service) Quantity(ctx context.Context, sessionID, productID string) (int64, error) {
	snap := s.load(ctx, sessionID)
	if idx := snap.find(productID); idx >= 0 {
		return snap.Items[idx].Quantity, nil
	}
	return 0, nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	return s.summarize(s.load(ctx, sessionID)), nil
}

func (s *service) summarize(snap *snapshot) *Summary {
	lines := make([]Line, 0, len(snap.Items))
	for _, item := range snap.Items {
		lines = append(lines, Line{
			Item:            item,
			DisplayQuantity: pricing.FormatQuantity(item.Product.Unit, item.Quantity),
			LinePrice:       item.LinePrice(),
		})
	}

	subtotal := snap.subtotal()
	charge := s.delivery.Charge()
	remaining := s.delivery.FreeThreshold().Sub(subtotal)
	free := !remaining.IsPositive()
	if free {
		charge = decimal.Zero
		remaining = decimal.Zero
	}

	return &Summary{
		Lines:                lines,
		TotalItems:           len(lines),
		Subtotal:             subtotal,
		DeliveryCharge:       charge,
		GrandTotal:           subtotal.Add(charge),
		FreeDelivery:         free,
		AmountToFreeDelivery: remaining,
	}
}

// load restores the session cart from the durable store, falling back to the
// in-process copy when the store is unreadable.
func (s *service) load(ctx context.Context, sessionID string) *snapshot {
	raw, err := s.store.Get(ctx, blobstore.CartKey(sessionID))
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart store read failed, using in-memory state")
		}
		return s.localCopy(sessionID)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable cart snapshot")
		return &snapshot{}
	}
	return &snap
}

// persist writes the mutated cart through to the durable store. Write
// failures are non-fatal: the in-process copy keeps the session alive.
func (s *service) persist(ctx context.Context, sessionID string, snap *snapshot) {
	s.setLocal(sessionID, snap)
	raw, err := json.Marshal(snap)
	if err != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "encoding cart snapshot", err)
		return
	}
	if err := s.store.Put(ctx, blobstore.CartKey(sessionID), raw); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "cart store write failed, continuing in memory")
	}
}

func (s *service) localCopy(sessionID string) *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap, ok := s.local[sessionID]; ok && snap != nil {
		copied := snapshot{Items: make([]Item, len(snap.Items))}
		copy(copied.Items, snap.Items)
		return &copied
	}
	return &snapshot{}
}

func (s *service) setLocal(sessionID string, snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap == nil {
		delete(s.local, sessionID)
		return
	}
	copied := snapshot{Items: make([]Item, len(snap.Items))}
	copy(copied.Items, snap.Items)
	s.local[sessionID] = &copied
}
