package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/feedback"
)

// RegisterFeedbackRoutes wires trip feedback endpoints.
func RegisterFeedbackRoutes(r fiber.Router, h *feedback.Handler) {
	r.Post("/feedback", h.Create)
	r.Get("/vendors/:phoneNo/feedback", h.Summary)
}
