package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NaveenSky123/manaraitubazaar/api/responses"
	catalogsvc "github.com/NaveenSky123/manaraitubazaar/internal/catalog"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

// CatalogTabs lists the storefront tabs in display order.
func CatalogTabs(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Tabs(r.Context()))
	}
}

// CatalogTabProducts lists the products under one tab.
func CatalogTabProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ByTab(r.Context(), chi.URLParam(r, "tabID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// CatalogProducts lists products filtered by the category query parameter.
func CatalogProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "category query parameter required"))
			return
		}

		products, err := svc.ByCategory(r.Context(), enums.ProductCategory(category))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// CatalogProduct returns a single product by id.
func CatalogProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.ByID(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
