// Package geo captures a device location for delivery, normalizing provider
// failures into a small set of kinds the checkout flow can react to.
package geo

import (
	"context"
	"fmt"
	"time"
)

// ErrorKind classifies why a location could not be captured.
type ErrorKind string

const (
	KindUnsupported      ErrorKind = "unsupported"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindUnavailable      ErrorKind = "unavailable"
	KindTimeout          ErrorKind = "timeout"
	KindUnknown          ErrorKind = "unknown"
)

func (k ErrorKind) String() string {
	return string(k)
}

func (k ErrorKind) IsValid() bool {
	switch k {
	case KindUnsupported, KindPermissionDenied, KindUnavailable, KindTimeout, KindUnknown:
		return true
	}
	return false
}

// Error is a capture failure with a normalized kind. The checkout flow keeps
// going without coordinates when it sees one.
type Error struct {
	Kind  ErrorKind
	cause error
}

func NewError(kind ErrorKind, cause error) *Error {
	if !kind.IsValid() {
		kind = KindUnknown
	}
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("location capture failed (%s): %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("location capture failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Location is a captured coordinate pair. Accuracy is meters when reported.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// Valid reports whether the coordinates fall inside WGS84 bounds.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// MapsLink returns the Google Maps URL for the captured point.
func (l Location) MapsLink() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", l.Latitude, l.Longitude)
}

// Provider resolves the device position. Implementations block until the
// position is known or fail with a *Error.
type Provider interface {
	Locate(ctx context.Context) (Location, error)
}

// Locate runs the provider under a capture deadline; a nil provider means
// the platform has no positioning capability at all.
func Locate(ctx context.Context, provider Provider, timeout time.Duration) (Location, error) {
	if provider == nil {
		return Location{}, NewError(KindUnsupported, nil)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	loc, err := provider.Locate(ctx)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Location{}, NewError(KindTimeout, err)
		}
		if typed, ok := err.(*Error); ok {
			return Location{}, typed
		}
		return Location{}, NewError(KindUnknown, err)
	}
	if !loc.Valid() {
		return Location{}, NewError(KindUnavailable, fmt.Errorf("coordinates out of range: %v,%v", loc.Latitude, loc.Longitude))
	}
	return loc, nil
}
