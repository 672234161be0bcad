package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/vendor"
)

// RegisterVendorRoutes wires vendor profile endpoints.
func RegisterVendorRoutes(r fiber.Router, h *vendor.Handler) {
	r.Post("/vendors", h.Create)
	r.Get("/vendors/inactive", h.ListInactive)
	r.Get("/vendors/:phoneNo", h.Get)
	r.Post("/vendors/:phoneNo/activate", h.Activate)
	r.Post("/vendors/:phoneNo/deactivate", h.Deactivate)
}
