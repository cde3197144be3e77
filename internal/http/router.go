package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	"github.com/MrJamesThe3rd/walkies/internal/http/booking"
	"github.com/MrJamesThe3rd/walkies/internal/http/invoice"
	"github.com/MrJamesThe3rd/walkies/internal/http/respond"
	"github.com/MrJamesThe3rd/walkies/internal/http/reward"
)

type Options struct {
	AllowedOrigins []string
}

func New(
	opts Options,
	authenticator *auth.Authenticator,
	bookingV1 *booking.Handler,
	rewardV1 *reward.Handler,
	invoiceV1 *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticator.Middleware)
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/slots", bookingV1.SlotRoutes)
		r.Route("/bookings", bookingV1.BookingRoutes)
		r.Route("/vouchers", rewardV1.VoucherRoutes)
		r.Route("/invoices", invoiceV1.Routes)

		r.Route("/admin", func(r chi.Router) {
			r.Route("/bookings", bookingV1.AdminRoutes)
			r.Route("/campaigns", rewardV1.AdminRoutes)
			r.Route("/invoices", invoiceV1.AdminRoutes)
		})
	})

	return router
}
