package routers

import (
	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	internalConfig *config.InternalConfig,
	paymentController *controllers.PaymentController,
) {
	// The gateway picks the HTTP method; the Pay URL has to answer all of
	// them identically.
	router.With(
		middlewares.CallbackRateLimit(internalConfig.App.CallbackRatePerSecond, internalConfig.App.CallbackBurst),
	).HandleFunc("/callback", paymentController.HandlePayAnyWayCallback)
}
