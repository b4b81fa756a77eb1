package blobstore

import "strings"

const keyNamespace = "mrb"

// CartKey returns the namespaced key for a session's cart snapshot.
func CartKey(sessionID string) string {
	return buildKey("cart", sessionID)
}

// AddressKey returns the namespaced key for a session's saved address.
func AddressKey(sessionID string) string {
	return buildKey("address", sessionID)
}

// CheckoutKey returns the namespaced key for a session's checkout draft.
func CheckoutKey(sessionID string) string {
	return buildKey("checkout", sessionID)
}

func buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}
