package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NaveenSky123/manaraitubazaar/api/controllers"
	"github.com/NaveenSky123/manaraitubazaar/api/middleware"
	addresssvc "github.com/NaveenSky123/manaraitubazaar/internal/address"
	cartsvc "github.com/NaveenSky123/manaraitubazaar/internal/cart"
	catalogsvc "github.com/NaveenSky123/manaraitubazaar/internal/catalog"
	checkoutsvc "github.com/NaveenSky123/manaraitubazaar/internal/checkout"
	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db"
	"github.com/NaveenSky123/manaraitubazaar/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	catalogService catalogsvc.Service,
	cartService cartsvc.Service,
	addressService addresssvc.Service,
	checkoutService checkoutsvc.Service,
	pingers ...db.Pinger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers...))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/tabs", controllers.CatalogTabs(catalogService, logg))
			r.Get("/tabs/{tabID}/products", controllers.CatalogTabProducts(catalogService, logg))
			r.Get("/products", controllers.CatalogProducts(catalogService, logg))
			r.Get("/products/{productID}", controllers.CatalogProduct(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartSummary(cartService, logg))
			r.Put("/items", controllers.CartPutItem(cartService, catalogService, logg))
			r.Patch("/items/{productID}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Route("/address", func(r chi.Router) {
			r.Get("/", controllers.AddressGet(addressService, logg))
			r.Put("/", controllers.AddressSave(addressService, logg))
			r.Delete("/", controllers.AddressDelete(addressService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", controllers.CheckoutGet(checkoutService, logg))
			r.Patch("/", controllers.CheckoutUpdate(checkoutService, logg))
			r.Post("/location", controllers.CheckoutSetLocation(checkoutService, cfg.Location.Timeout, logg))
			r.Post("/submit", controllers.CheckoutSubmit(checkoutService, logg))
		})
	})

	return r
}
