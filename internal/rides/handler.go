package rides

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Handler exposes ride endpoints over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a ride HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type bookRequest struct {
	CustomerPhone string `json:"customer_phone"`
	VendorPhone   string `json:"vendor_phone"`
	PickupPoint   string `json:"pickup_point"`
	DropPoint     string `json:"drop_point"`
	Fare          *int64 `json:"fare"`
}

// Book handles POST /rides.
func (h *Handler) Book(c *fiber.Ctx) error {
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body")
	}
	if req.Fare == nil {
		return apperr.InvalidArgument("fare is mandatory")
	}
	ride, err := h.service.Book(c.UserContext(), BookRequest{
		CustomerPhone: req.CustomerPhone,
		VendorPhone:   req.VendorPhone,
		PickupPoint:   req.PickupPoint,
		DropPoint:     req.DropPoint,
		Fare:          *req.Fare,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ride)
}

// Get handles GET /rides/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	ride, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ride)
}

// History handles GET /customers/:phone/rides.
func (h *Handler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	rides, err := h.service.History(c.UserContext(), c.Params("phoneNo"), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"rides": rides})
}
