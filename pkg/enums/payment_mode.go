package enums

import "fmt"

// PaymentMode describes how a customer intends to settle an order.
type PaymentMode string

const (
	PaymentModeCOD PaymentMode = "cod"
	PaymentModeUPI PaymentMode = "upi"
)

var validPaymentModes = []PaymentMode{
	PaymentModeCOD,
	PaymentModeUPI,
}

// String implements fmt.Stringer.
func (p PaymentMode) String() string {
	return string(p)
}

// Label returns the customer-facing label used in the order message.
func (p PaymentMode) Label() string {
	switch p {
	case PaymentModeCOD:
		return "Cash on Delivery"
	case PaymentModeUPI:
		return "UPI (Paid)"
	}
	return string(p)
}

// IsValid reports whether the value is a known PaymentMode.
func (p PaymentMode) IsValid() bool {
	for _, candidate := range validPaymentModes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentMode converts raw input into a PaymentMode.
func ParsePaymentMode(value string) (PaymentMode, error) {
	for _, candidate := range validPaymentModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment mode %q", value)
}
