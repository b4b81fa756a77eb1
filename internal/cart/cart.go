package cart

import (
	"github.com/NaveenSky123/manaraitubazaar/internal/pricing"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Item is a cart line: a product snapshot plus a quantity in the product's
// base granularity (grams/ml for weighted units, counts otherwise).
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

// LinePrice computes the price of this line.
func (i Item) LinePrice() decimal.Decimal {
	return pricing.ItemPrice(i.Product.Price, i.Product.Unit, i.Quantity)
}

// Line is an Item decorated with display fields for API responses.
type Line struct {
	Item
	DisplayQuantity string          `json:"display_quantity"`
	LinePrice       decimal.Decimal `json:"line_price"`
}

// Summary is the priced view of a cart. AmountToFreeDelivery is the extra
// subtotal needed to reach the free-delivery threshold, zero once reached.
type Summary struct {
	Lines                []Line          `json:"lines"`
	TotalItems           int             `json:"total_items"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	DeliveryCharge       decimal.Decimal `json:"delivery_charge"`
	GrandTotal           decimal.Decimal `json:"grand_total"`
	FreeDelivery         bool            `json:"free_delivery"`
	AmountToFreeDelivery decimal.Decimal `json:"amount_to_free_delivery"`
}

// snapshot is the persisted cart form: insertion-ordered lines, one per
// product id.
type snapshot struct {
	Items []Item `json:"items"`
}

func (s *snapshot) find(productID string) int {
	for i, item := range s.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *snapshot) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LinePrice())
	}
	return total
}
