package checkout

import (
	"math/rand"
	"time"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderID builds an order reference: prefix, UTC date as YYYYMMDD,
// then four random alphanumeric characters. Generated once per checkout
// draft and stable until the order is submitted.
func generateOrderID(prefix string, now time.Time) string {
	buf := make([]byte, 0, len(prefix)+12)
	buf = append(buf, prefix...)
	buf = now.UTC().AppendFormat(buf, "20060102")
	for i := 0; i < 4; i++ {
		buf = append(buf, orderIDAlphabet[rand.Intn(len(orderIDAlphabet))])
	}
	return string(buf)
}
