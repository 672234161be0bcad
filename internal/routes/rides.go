package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/rides"
)

// RegisterRideRoutes wires booking endpoints.
func RegisterRideRoutes(r fiber.Router, h *rides.Handler) {
	r.Post("/rides", h.Book)
	r.Get("/rides/:id", h.Get)
	r.Get("/customers/:phoneNo/rides", h.History)
}
