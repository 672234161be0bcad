package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/customer"
)

// RegisterCustomerRoutes wires customer profile endpoints.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler) {
	r.Post("/customers", h.Create)
	r.Get("/customers/:phoneNo", h.Get)
	r.Post("/customers/:phoneNo/activate", h.Activate)
	r.Post("/customers/:phoneNo/deactivate", h.Deactivate)
}
