package enums

import "fmt"

// DeliveryDate restricts delivery scheduling to the next two days.
type DeliveryDate string

const (
	DeliveryDateToday    DeliveryDate = "today"
	DeliveryDateTomorrow DeliveryDate = "tomorrow"
)

var validDeliveryDates = []DeliveryDate{
	DeliveryDateToday,
	DeliveryDateTomorrow,
}

// String implements fmt.Stringer.
func (d DeliveryDate) String() string {
	return string(d)
}

// Label returns the customer-facing label used in the order message.
func (d DeliveryDate) Label() string {
	switch d {
	case DeliveryDateToday:
		return "Today"
	case DeliveryDateTomorrow:
		return "Tomorrow"
	}
	return string(d)
}

// IsValid reports whether the value is a known DeliveryDate.
func (d DeliveryDate) IsValid() bool {
	for _, candidate := range validDeliveryDates {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeliveryDate converts raw input into a DeliveryDate.
func ParseDeliveryDate(value string) (DeliveryDate, error) {
	for _, candidate := range validDeliveryDates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery date %q", value)
}
