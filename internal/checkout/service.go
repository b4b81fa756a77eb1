package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NaveenSky123/manaraitubazaar/internal/address"
	"github.com/NaveenSky123/manaraitubazaar/internal/cart"
	"github.com/NaveenSky123/manaraitubazaar/pkg/blobstore"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/geo"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
	"github.com/NaveenSky123/manaraitubazaar/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Missing-field labels, reported in this fixed order.
const (
	missingAddress     = "Address"
	missingCartItems   = "Cart items"
	missingDate        = "Delivery date"
	missingTimeSlot    = "Time slot"
	missingPayment     = "Payment method"
	missingTransaction = "UPI Transaction ID"
)

// UpdateInput patches the checkout draft. Nil fields stay unchanged; empty
// strings clear the field.
type UpdateInput struct {
	DeliveryDate     *string
	TimeSlot         *string
	Remarks          *string
	PaymentMode      *string
	UPITransactionID *string
}

type cartAccess interface {
	Summary(ctx context.Context, sessionID string) (*cart.Summary, error)
	Clear(ctx context.Context, sessionID string) error
}

type addressAccess interface {
	Get(ctx context.Context, sessionID string) (*address.Address, error)
}

// Service drives the order composition flow: collect the delivery slot,
// payment choice, and optional location, then turn the session's cart and
// address into the outbound WhatsApp message and UPI link.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	Update(ctx context.Context, sessionID string, input UpdateInput) (*View, error)
	SetLocation(ctx context.Context, sessionID string, loc geo.Location) (*View, error)
	SkipLocation(ctx context.Context, sessionID string) (*View, error)
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

type service struct {
	store    blobstore.Store
	carts    cartAccess
	addrs    addressAccess
	storeCfg config.StoreConfig
	payment  config.PaymentConfig
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
	now      func() time.Time

	mu    sync.Mutex
	local map[string]*Draft
}

// NewService constructs a checkout service instance.
func NewService(store blobstore.Store, carts cartAccess, addrs addressAccess, storeCfg config.StoreConfig, payment config.PaymentConfig, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if addrs == nil {
		return nil, fmt.Errorf("address service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:    store,
		carts:    carts,
		addrs:    addrs,
		storeCfg: storeCfg,
		payment:  payment,
		logg:     logg,
		metrics:  m,
		now:      time.Now,
		local:    make(map[string]*Draft),
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	draft := s.loadOrCreate(ctx, sessionID)
	return s.view(ctx, sessionID, draft)
}

func (s *service) Update(ctx context.Context, sessionID string, input UpdateInput) (*View, error) {
	draft := s.loadOrCreate(ctx, sessionID)

	if input.DeliveryDate != nil {
		if *input.DeliveryDate == "" {
			draft.DeliveryDate = ""
		} else {
			date, err := enums.ParseDeliveryDate(*input.DeliveryDate)
			if err != nil {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown delivery date %q", *input.DeliveryDate))
			}
			draft.DeliveryDate = date
		}
	}
	if input.TimeSlot != nil {
		if *input.TimeSlot != "" && !ValidSlot(*input.TimeSlot) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown time slot %q", *input.TimeSlot))
		}
		draft.TimeSlot = *input.TimeSlot
	}
	if input.Remarks != nil {
		draft.Remarks = strings.TrimSpace(*input.Remarks)
	}
	if input.PaymentMode != nil {
		if *input.PaymentMode == "" {
			draft.PaymentMode = ""
		} else {
			mode, err := enums.ParsePaymentMode(*input.PaymentMode)
			if err != nil {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown payment mode %q", *input.PaymentMode))
			}
			draft.PaymentMode = mode
		}
	}
	if input.UPITransactionID != nil {
		draft.UPITransactionID = *input.UPITransactionID
	}

	s.persist(ctx, sessionID, draft)
	return s.view(ctx, sessionID, draft)
}

// SetLocation records a captured coordinate pair. A result arriving after
// the customer already declined is stale and is ignored.
func (s *service) SetLocation(ctx context.Context, sessionID string, loc geo.Location) (*View, error) {
	draft := s.loadOrCreate(ctx, sessionID)
	if draft.LocationState == PromptDenied {
		return s.view(ctx, sessionID, draft)
	}
	if !loc.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coordinates out of range")
	}
	draft.LocationState = PromptGranted
	draft.Location = &loc
	s.persist(ctx, sessionID, draft)
	return s.view(ctx, sessionID, draft)
}

// SkipLocation marks the prompt declined for the rest of the session.
func (s *service) SkipLocation(ctx context.Context, sessionID string) (*View, error) {
	draft := s.loadOrCreate(ctx, sessionID)
	draft.LocationState = PromptDenied
	draft.Location = nil
	s.persist(ctx, sessionID, draft)
	return s.view(ctx, sessionID, draft)
}

// Submit composes the order. A ready draft that has never been asked about
// location sharing yields a location-prompt action instead; the customer is
// asked exactly once per session. The cart is cleared only after the payload
// is built, and the draft is discarded so the next checkout mints a fresh
// order id.
func (s *service) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	started := s.now()
	draft := s.loadOrCreate(ctx, sessionID)

	summary, err := s.carts.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	addr, err := s.addrs.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	missing := missingFields(draft, summary, addr)
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is not ready to submit").
			WithDetails(map[string]any{"missing": missing})
	}

	if draft.LocationState == PromptNotAsked {
		return &SubmitResult{Action: ActionLocationPrompt}, nil
	}

	amounts := computeAmounts(summary, draft.PaymentMode, s.payment.Advance())

	items := make([]MessageItem, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, MessageItem{
			Name:     line.Product.Name,
			Quantity: line.DisplayQuantity,
			Price:    line.LinePrice,
		})
	}

	var locationLink string
	if draft.LocationState == PromptGranted && draft.Location != nil {
		locationLink = draft.Location.MapsLink()
	}

	message := ComposeMessage(MessageInput{
		StoreName:       s.storeCfg.Name,
		Branch:          s.storeCfg.Branch,
		CustomerName:    addr.FullName,
		PrimaryMobile:   addr.PrimaryMobile,
		AlternateMobile: addr.AlternateMobile,
		FullAddress:     address.FullLine(*addr, s.storeCfg.PinCode),
		LocationLink:    locationLink,
		DateLabel:       draft.DeliveryDate.Label(),
		TimeSlot:        draft.TimeSlot,
		Remarks:         draft.Remarks,
		Items:           items,
		Subtotal:        amounts.Subtotal,
		DeliveryCharge:  amounts.DeliveryCharge,
		GrandTotal:      amounts.GrandTotal,
		PaymentLabel:    draft.PaymentMode.Label(),
		TransactionID:   strings.TrimSpace(draft.UPITransactionID),
		PaidAmount:      amounts.PayableNow,
		RemainingAmount: amounts.RemainingAmount,
	})

	order := &Order{
		OrderID:         draft.OrderID,
		Message:         message,
		WhatsAppURL:     WhatsAppURL(s.storeCfg.WhatsAppNumber, message),
		UPILink:         UPILink(s.payment.UPIVPA, s.payment.PayeeName, amounts.PayableNow, draft.OrderID),
		Subtotal:        amounts.Subtotal,
		DeliveryCharge:  amounts.DeliveryCharge,
		GrandTotal:      amounts.GrandTotal,
		PaidAmount:      amounts.PayableNow,
		RemainingAmount: amounts.RemainingAmount,
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "clearing cart after submit failed")
	}
	s.discard(ctx, sessionID)

	s.metrics.IncOrderComposed()
	s.metrics.ObserveComposeDuration(s.now().Sub(started))
	return &SubmitResult{Order: order}, nil
}

func missingFields(draft *Draft, summary *cart.Summary, addr *address.Address) []string {
	var missing []string
	if addr == nil {
		missing = append(missing, missingAddress)
	}
	if summary == nil || len(summary.Lines) == 0 {
		missing = append(missing, missingCartItems)
	}
	if draft.DeliveryDate == "" {
		missing = append(missing, missingDate)
	}
	if draft.TimeSlot == "" {
		missing = append(missing, missingTimeSlot)
	}
	if draft.PaymentMode == "" {
		missing = append(missing, missingPayment)
	}
	if len(strings.TrimSpace(draft.UPITransactionID)) < 6 {
		missing = append(missing, missingTransaction)
	}
	return missing
}

// computeAmounts splits the grand total by payment mode: cash on delivery
// pays the fixed advance now with the rest due on delivery; UPI pays in
// full upfront.
func computeAmounts(summary *cart.Summary, mode enums.PaymentMode, advance decimal.Decimal) Amounts {
	amounts := Amounts{
		Subtotal:        summary.Subtotal,
		DeliveryCharge:  summary.DeliveryCharge,
		GrandTotal:      summary.GrandTotal,
		PayableNow:      decimal.Zero,
		RemainingAmount: decimal.Zero,
	}
	switch mode {
	case enums.PaymentModeCOD:
		amounts.PayableNow = advance
		amounts.RemainingAmount = summary.GrandTotal.Sub(advance)
	case enums.PaymentModeUPI:
		amounts.PayableNow = summary.GrandTotal
	}
	return amounts
}

func (s *service) view(ctx context.Context, sessionID string, draft *Draft) (*View, error) {
	summary, err := s.carts.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	addr, err := s.addrs.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	missing := missingFields(draft, summary, addr)
	amounts := computeAmounts(summary, draft.PaymentMode, s.payment.Advance())

	var upiLink string
	if draft.PaymentMode != "" {
		upiLink = UPILink(s.payment.UPIVPA, s.payment.PayeeName, amounts.PayableNow, draft.OrderID)
	}

	return &View{
		Draft:      *draft,
		SlotGroups: SlotGroups(),
		CanSubmit:  len(missing) == 0,
		Missing:    missing,
		Amounts:    amounts,
		UPILink:    upiLink,
	}, nil
}

// loadOrCreate restores the session draft, minting a fresh one (with a new
// order id) when none exists. Store failures degrade to in-process state.
func (s *service) loadOrCreate(ctx context.Context, sessionID string) *Draft {
	raw, err := s.store.Get(ctx, blobstore.CheckoutKey(sessionID))
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "checkout store read failed, using in-memory state")
			if draft := s.localCopy(sessionID); draft != nil {
				return draft
			}
		}
		return s.fresh(ctx, sessionID)
	}
	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "discarding unreadable checkout draft")
		return s.fresh(ctx, sessionID)
	}
	return &draft
}

func (s *service) fresh(ctx context.Context, sessionID string) *Draft {
	draft := &Draft{
		OrderID:       generateOrderID(s.payment.OrderIDPrefix, s.now()),
		LocationState: PromptNotAsked,
	}
	s.persist(ctx, sessionID, draft)
	return draft
}

func (s *service) persist(ctx context.Context, sessionID string, draft *Draft) {
	s.setLocal(sessionID, draft)
	raw, err := json.Marshal(draft)
	if err != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "encoding checkout draft", err)
		return
	}
	if err := s.store.Put(ctx, blobstore.CheckoutKey(sessionID), raw); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "checkout store write failed, continuing in memory")
	}
}

func (s *service) discard(ctx context.Context, sessionID string) {
	s.setLocal(sessionID, nil)
	if err := s.store.Delete(ctx, blobstore.CheckoutKey(sessionID)); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "checkout store delete failed, continuing in memory")
	}
}

func (s *service) localCopy(sessionID string) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if draft, ok := s.local[sessionID]; ok && draft != nil {
		copied := *draft
		return &copied
	}
	return nil
}

func (s *service) setLocal(sessionID string, draft *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if draft == nil {
		delete(s.local, sessionID)
		return
	}
	copied := *draft
	s.local[sessionID] = &copied
}
