package blobstore

import "testing"

func TestKeyBuilders(t *testing.T) {
	t.Parallel()

	if got := CartKey("s1"); got != "mrb:cart:s1" {
		t.Fatalf("unexpected cart key %s", got)
	}
	if got := AddressKey("s1"); got != "mrb:address:s1" {
		t.Fatalf("unexpected address key %s", got)
	}
	if got := CheckoutKey("s1"); got != "mrb:checkout:s1" {
		t.Fatalf("unexpected checkout key %s", got)
	}
	if got := buildKey("cart", ""); got != "mrb:cart" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}
