package routers

import (
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
}
