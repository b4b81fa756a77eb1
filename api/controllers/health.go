package controllers

import (
	"net/http"

	"github.com/NaveenSky123/manaraitubazaar/api/responses"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MRB-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the wired backing stores. Pingers are nil for
// deployments that run without that store.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers ...db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MRB-Env", cfg.App.Env)

		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "backing store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
