package checkout

import (
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	"github.com/NaveenSky123/manaraitubazaar/pkg/geo"
	"github.com/shopspring/decimal"
)

// PromptState tracks whether the session was asked to share its location.
// Once asked, the customer is never prompted again for the session.
type PromptState string

const (
	PromptNotAsked PromptState = "not_asked"
	PromptGranted  PromptState = "granted"
	PromptDenied   PromptState = "denied"
)

// Draft is the in-progress checkout for a session. The order id is minted
// when the draft is first opened and stays stable until submission.
type Draft struct {
	OrderID          string             `json:"order_id"`
	DeliveryDate     enums.DeliveryDate `json:"delivery_date,omitempty"`
	TimeSlot         string             `json:"time_slot,omitempty"`
	Remarks          string             `json:"remarks,omitempty"`
	PaymentMode      enums.PaymentMode  `json:"payment_mode,omitempty"`
	UPITransactionID string             `json:"upi_transaction_id,omitempty"`
	LocationState    PromptState        `json:"location_state"`
	Location         *geo.Location      `json:"location,omitempty"`
}

// Amounts is the money split for the chosen payment mode.
type Amounts struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	PayableNow      decimal.Decimal `json:"payable_now"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// View is the draft decorated with readiness and pricing. UPILink carries
// the deep link for the currently payable amount once a payment mode is
// chosen.
type View struct {
	Draft      Draft       `json:"draft"`
	SlotGroups []SlotGroup `json:"slot_groups"`
	CanSubmit  bool        `json:"can_submit"`
	Missing    []string    `json:"missing,omitempty"`
	Amounts    Amounts     `json:"amounts"`
	UPILink    string      `json:"upi_link,omitempty"`
}

// ActionLocationPrompt asks the client to offer the one-time location share
// before the order is composed.
const ActionLocationPrompt = "location_prompt"

// SubmitResult is either a follow-up action for the client or the composed
// order.
type SubmitResult struct {
	Action string `json:"action,omitempty"`
	Order  *Order `json:"order,omitempty"`
}

// Order is the composed submission payload handed to the customer's
// messaging app. It exists only transiently; nothing is stored server-side.
type Order struct {
	OrderID         string          `json:"order_id"`
	Message         string          `json:"message"`
	WhatsAppURL     string          `json:"whatsapp_url"`
	UPILink         string          `json:"upi_link"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}
