package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	auth := router.With(h.requireToken)
	admin := router.With(h.requireToken, h.requireAdmin)

	router.Get("/", h.root)
	router.Get("/version", h.getServerVersion)
	router.Post("/jwt", h.issueToken)

	// users
	admin.Get("/users", h.listUsers)
	router.Post("/users", h.registerUser)
	auth.Get("/users/{id}", h.getUser)
	auth.Put("/users/{id}", h.updateUser)
	auth.Get("/users/admin/{email}", h.checkAdmin)
	admin.Patch("/users/admin/{id}", h.changeUserRole)
	auth.Get("/users/status/{email}", h.checkActive)
	admin.Patch("/users/status/{id}", h.changeUserStatus)

	// diagnostic tests
	router.Get("/allTests", h.listTests)
	admin.Post("/allTests", h.createTest)
	router.Get("/allTests/{id}", h.getTest)
	admin.Put("/allTests/{id}", h.updateTest)
	admin.Delete("/allTests/{id}", h.deleteTest)

	router.Post("/testPayment", h.createPaymentIntent)

	// bookings
	auth.Post("/allBookings", h.createBooking)
	auth.Get("/allBookings", h.listBookings)

	// banners
	router.Get("/allBanners", h.listBanners)
	router.Get("/allBanners/active", h.activeBanner)
	admin.Post("/allBanners", h.createBanner)
	admin.Patch("/allBanners/{id}", h.changeBannerStatus)
	admin.Delete("/allBanners/{id}", h.deleteBanner)
	admin.Patch("/deactivatedBanners", h.deactivateBanners)

	// reference lists
	router.Get("/divisions", h.listDivisions)
	router.Get("/districts", h.listDistricts)
	router.Get("/promotions", h.listPromotions)
	router.Get("/recommendations", h.listRecommendations)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
