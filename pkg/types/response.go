// Package types holds the wire envelopes shared by every storefront
// endpoint. Handlers never write bare payloads; responses are always
// wrapped in one of these two shapes.
package types

// SuccessEnvelope wraps a successful response under a "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Code is one of the
// stable error codes from pkg/errors; Details carries per-field
// validation messages when present.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under an "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
