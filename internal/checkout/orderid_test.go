package checkout

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 22, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	pattern := regexp.MustCompile(`^MRB20250615[0-9A-Z]{4}$`)

	for i := 0; i < 50; i++ {
		id := generateOrderID("MRB", now)
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected order id %q", id)
		}
	}
}

func TestGenerateOrderIDUsesUTCDate(t *testing.T) {
	t.Parallel()

	// 1:30 AM IST on the 16th is still the 15th in UTC.
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 6, 16, 1, 30, 0, 0, ist)
	id := generateOrderID("MRB", now)
	if id[3:11] != "20250615" {
		t.Fatalf("expected UTC date 20250615 in %q", id)
	}
}
