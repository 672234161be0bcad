package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/car"
)

// RegisterCarRoutes wires car registry endpoints.
func RegisterCarRoutes(r fiber.Router, h *car.Handler) {
	r.Post("/cars", h.Register)
	r.Get("/cars/:plateNo", h.GetByPlate)
	r.Get("/vendors/:phoneNo/cars", h.ListByVendor)
}
