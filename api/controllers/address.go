package controllers

import (
	"net/http"

	"github.com/NaveenSky123/manaraitubazaar/api/middleware"
	"github.com/NaveenSky123/manaraitubazaar/api/responses"
	"github.com/NaveenSky123/manaraitubazaar/api/validators"
	addresssvc "github.com/NaveenSky123/manaraitubazaar/internal/address"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

type addressResponse struct {
	Address *addresssvc.Address `json:"address"`
	Saved   bool                `json:"saved"`
}

// AddressGet returns the session's saved address, or the edit-form defaults
// when none is saved yet.
func AddressGet(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		saved, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if saved == nil {
			defaults := svc.Defaults()
			responses.WriteSuccess(w, addressResponse{Address: &defaults, Saved: false})
			return
		}

		responses.WriteSuccess(w, addressResponse{Address: saved, Saved: true})
	}
}

type saveAddressRequest struct {
	FullName        string `json:"full_name"`
	PrimaryMobile   string `json:"primary_mobile"`
	AlternateMobile string `json:"alternate_mobile"`
	HouseNo         string `json:"house_no"`
	Village         string `json:"village"`
	Street          string `json:"street"`
	LandMark        string `json:"land_mark"`
}

// AddressSave replaces the session's address. Field-level validation errors
// come back under the error details.
func AddressSave(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		var payload saveAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		addr := addresssvc.Address{
			FullName:        payload.FullName,
			PrimaryMobile:   payload.PrimaryMobile,
			AlternateMobile: payload.AlternateMobile,
			HouseNo:         payload.HouseNo,
			Village:         payload.Village,
			Street:          payload.Street,
			LandMark:        payload.LandMark,
		}
		if err := svc.Save(r.Context(), sessionID, addr); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		saved, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, addressResponse{Address: saved, Saved: true})
	}
}

// AddressDelete removes the session's saved address.
func AddressDelete(svc addresssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "address service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
