package feedback

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Handler exposes feedback HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a feedback HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	VendorPhone   string   `json:"vendor_phone"`
	CustomerPhone string   `json:"customer_phone"`
	BookingID     string   `json:"booking_id"`
	ReviewerName  string   `json:"reviewer_name"`
	StarRating    int      `json:"star_rating"`
	Comments      string   `json:"comments"`
	Badges        []string `json:"badges"`
}

// Create records a feedback submission.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	fb, err := h.service.Create(c.UserContext(), CreateInput{
		VendorPhone:   req.VendorPhone,
		CustomerPhone: req.CustomerPhone,
		BookingID:     req.BookingID,
		ReviewerName:  req.ReviewerName,
		StarRating:    req.StarRating,
		Comments:      req.Comments,
		Badges:        req.Badges,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": fb.ID, "created_at": fb.CreatedAt})
}

// Summary returns aggregated ratings and badges for a vendor.
func (h *Handler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.SummaryFor(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"vendor_phone": summary.VendorPhone,
		"total_trips":  summary.TotalTrips,
		"avg_rating":   summary.AvgRating,
		"star_counts":  summary.StarCounts,
		"badges":       summary.Badges,
	})
}
