package checkout

import (
	"fmt"
	"strings"

	"github.com/NaveenSky123/manaraitubazaar/internal/pricing"
	"github.com/shopspring/decimal"
)

// MessageItem is one itemized order line.
type MessageItem struct {
	Name     string
	Quantity string
	Price    decimal.Decimal
}

// MessageInput carries everything the order message template needs. The
// rendered text is the wire contract with the fulfiller reading it on
// WhatsApp: field order and labels are fixed.
type MessageInput struct {
	StoreName       string
	Branch          string
	CustomerName    string
	PrimaryMobile   string
	AlternateMobile string
	FullAddress     string
	LocationLink    string
	DateLabel       string
	TimeSlot        string
	Remarks         string
	Items           []MessageItem
	Subtotal        decimal.Decimal
	DeliveryCharge  decimal.Decimal
	GrandTotal      decimal.Decimal
	PaymentLabel    string
	TransactionID   string
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
}

const itemSeparator = "─────────────────"

// ComposeMessage renders the order text, unencoded.
func ComposeMessage(in MessageInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order - %s, %s*\n\n", in.StoreName, in.Branch)
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", in.CustomerName)
	fmt.Fprintf(&b, "📞 *Primary Mobile:* %s\n", in.PrimaryMobile)
	fmt.Fprintf(&b, "📞 *Alternate Mobile:* %s\n", in.AlternateMobile)
	fmt.Fprintf(&b, "📍 *Address:* %s\n", in.FullAddress)

	if in.LocationLink != "" {
		fmt.Fprintf(&b, "\n📍 *Delivery Location (Google Maps):*\n%s\n", in.LocationLink)
	}

	fmt.Fprintf(&b, "\n📅 *Delivery Date:* %s\n", in.DateLabel)
	fmt.Fprintf(&b, "⏰ *Time Slot:* %s\n", in.TimeSlot)

	if in.Remarks != "" {
		fmt.Fprintf(&b, "📝 *Remarks:* %s\n", in.Remarks)
	}

	b.WriteString("\n📦 *Order Items:*\n")
	b.WriteString(itemSeparator + "\n")
	for _, item := range in.Items {
		fmt.Fprintf(&b, "• %s - %s = %s\n", item.Name, item.Quantity, pricing.FormatPrice(item.Price))
	}
	b.WriteString(itemSeparator + "\n")

	fmt.Fprintf(&b, "💰 *Items Total:* %s\n", pricing.FormatPrice(in.Subtotal))
	if in.DeliveryCharge.IsPositive() {
		fmt.Fprintf(&b, "🚚 *Delivery:* %s\n", pricing.FormatPrice(in.DeliveryCharge))
	} else {
		b.WriteString("🚚 *Delivery:* FREE\n")
	}
	fmt.Fprintf(&b, "💵 *Grand Total:* %s\n\n", pricing.FormatPrice(in.GrandTotal))

	fmt.Fprintf(&b, "💳 *Payment Mode:* %s\n", in.PaymentLabel)
	if in.TransactionID != "" {
		fmt.Fprintf(&b, "🔖 *UPI Transaction ID:* %s\n", in.TransactionID)
	}
	fmt.Fprintf(&b, "✅ *Paid:* %s\n", pricing.FormatPrice(in.PaidAmount))
	if in.RemainingAmount.IsPositive() {
		fmt.Fprintf(&b, "⏳ *Remaining:* %s\n", pricing.FormatPrice(in.RemainingAmount))
	}

	fmt.Fprintf(&b, "\n🙏 Thank you for choosing %s – %s Branch.\nOnce payment or order verification is completed, your order will be delivered in the selected time slot.", in.StoreName, in.Branch)

	return b.String()
}

// WhatsAppURL wraps the message for the wa.me handoff.
func WhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encodeURIComponent(message))
}

// UPILink builds the upi://pay deep link. The amount is rendered without
// trailing zeros, matching what UPI apps expect.
func UPILink(vpa, payeeName string, amount decimal.Decimal, orderID string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		vpa,
		encodeURIComponent(payeeName),
		amount.String(),
		encodeURIComponent("Order ID: "+orderID))
}
