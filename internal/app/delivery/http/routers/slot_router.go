package routers

import (
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"
	"lexbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Get("/", slotController.ListTimeSlots)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin, constvars.LexbookRoleLawyer),
	).Post("/", slotController.CreateTimeSlot)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin, constvars.LexbookRoleLawyer),
	).Delete("/{slotID}", slotController.DeleteTimeSlot)
}
