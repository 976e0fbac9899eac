package routers

import (
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"
	"lexbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLawyerRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	slotController *controllers.SlotController,
	lawyerController *controllers.LawyerController,
) {
	router.Get("/", lawyerController.ListLawyers)
	router.Get("/{lawyerID}/available-dates", slotController.ListAvailableDates)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin),
	).Get("/stats", lawyerController.ListLawyersWithStats)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin),
	).Post("/", lawyerController.CreateLawyer)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin),
	).Delete("/{lawyerID}", lawyerController.DeactivateLawyer)
}
