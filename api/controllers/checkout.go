package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/NaveenSky123/manaraitubazaar/api/middleware"
	"github.com/NaveenSky123/manaraitubazaar/api/responses"
	"github.com/NaveenSky123/manaraitubazaar/api/validators"
	checkoutsvc "github.com/NaveenSky123/manaraitubazaar/internal/checkout"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/geo"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

// CheckoutGet returns the session's draft, slot groups, and readiness.
func CheckoutGet(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		view, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// Absent fields stay as they are; empty strings clear the stored value.
type updateCheckoutRequest struct {
	DeliveryDate     *string `json:"delivery_date"`
	TimeSlot         *string `json:"time_slot"`
	Remarks          *string `json:"remarks"`
	PaymentMode      *string `json:"payment_mode"`
	UPITransactionID *string `json:"upi_transaction_id"`
}

// CheckoutUpdate patches the draft's slot, date, payment, and remarks.
func CheckoutUpdate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload updateCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Update(r.Context(), middleware.SessionIDFromContext(r.Context()), checkoutsvc.UpdateInput{
			DeliveryDate:     payload.DeliveryDate,
			TimeSlot:         payload.TimeSlot,
			Remarks:          payload.Remarks,
			PaymentMode:      payload.PaymentMode,
			UPITransactionID: payload.UPITransactionID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

type setLocationRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Skip      bool     `json:"skip"`
}

// CheckoutSetLocation records the coordinates the customer shared, or marks
// the prompt declined when the payload carries skip. The store write runs
// under the configured location timeout so a slow backing store cannot hold
// the prompt open past the window the customer was promised.
func CheckoutSetLocation(svc checkoutsvc.Service, timeout time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload setLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if payload.Skip {
			view, err := svc.SkipLocation(ctx, sessionID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, view)
			return
		}

		loc := geo.Location{Latitude: payload.Latitude, Longitude: payload.Longitude}
		if payload.Accuracy != nil {
			loc.Accuracy = *payload.Accuracy
		}

		view, err := svc.SetLocation(ctx, sessionID, loc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// CheckoutSubmit composes the order message, WhatsApp URL, and UPI link,
// clearing the cart and discarding the draft. A ready order that has not yet
// been asked about location sharing gets the prompt action instead.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		result, err := svc.Submit(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.Order == nil {
			responses.WriteSuccess(w, result)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
