// Package pricing holds the money and quantity arithmetic for the
// storefront. Weighted units (kg, liter) quote their price per 1000 base
// units (grams, milliliters); discrete units price per piece.
package pricing

import (
	"fmt"
	"strconv"

	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	"github.com/shopspring/decimal"
)

// ItemPrice computes the line price for a quantity of product. For weighted
// units quantity is grams or milliliters and price is per 1000; for discrete
// units quantity is a count and price is per unit.
func ItemPrice(price decimal.Decimal, unit enums.Unit, quantity int64) decimal.Decimal {
	qty := decimal.NewFromInt(quantity)
	if unit.IsWeighted() {
		return price.Mul(qty).Shift(-3)
	}
	return price.Mul(qty)
}

// FormatPrice renders a rupee amount with two decimals, e.g. "₹45.00".
func FormatPrice(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// FormatQuantity renders a quantity as shoppers read it: "1 kg 500g",
// "750 ml", "1.5 L", "2 Bunches". Unknown units fall back to the bare
// number.
func FormatQuantity(unit enums.Unit, quantity int64) string {
	switch unit {
	case enums.UnitKg:
		kg := quantity / 1000
		grams := quantity % 1000
		switch {
		case kg > 0 && grams > 0:
			return fmt.Sprintf("%d kg %dg", kg, grams)
		case kg > 0:
			return fmt.Sprintf("%d kg", kg)
		default:
			return fmt.Sprintf("%dg", grams)
		}
	case enums.UnitLiter:
		if quantity >= 1000 {
			liters := decimal.NewFromInt(quantity).Shift(-3)
			return liters.String() + " L"
		}
		return fmt.Sprintf("%d ml", quantity)
	case enums.UnitBunch:
		return pluralize(quantity, "Bunch", "Bunches")
	case enums.UnitPacket:
		return pluralize(quantity, "Packet", "Packets")
	case enums.UnitPiece:
		return pluralize(quantity, "Piece", "Pieces")
	default:
		return strconv.FormatInt(quantity, 10)
	}
}

func pluralize(quantity int64, singular, plural string) string {
	if quantity == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", quantity, plural)
}
