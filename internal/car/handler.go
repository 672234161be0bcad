package car

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Handler exposes car registration HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a car HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	VendorPhone string `json:"vendor_phone"`
	Maker       string `json:"maker"`
	Model       string `json:"model"`
	PlateNo     string `json:"plate_no"`
	Seats       int    `json:"seats"`
	Category    string `json:"category"`
}

type carResponse struct {
	ID           string `json:"id"`
	VendorPhone  string `json:"vendor_phone"`
	Maker        string `json:"maker"`
	Model        string `json:"model"`
	PlateNo      string `json:"plate_no"`
	Seats        int    `json:"seats"`
	Category     string `json:"category"`
	RegisteredAt string `json:"registered_at"`
}

// Register maps a new car to a vendor.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	created, err := h.service.Register(c.UserContext(), RegisterInput{
		VendorPhone: req.VendorPhone,
		Maker:       req.Maker,
		Model:       req.Model,
		PlateNo:     req.PlateNo,
		Seats:       req.Seats,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(created))
}

// GetByPlate returns one car by its number plate.
func (h *Handler) GetByPlate(c *fiber.Ctx) error {
	found, err := h.service.GetByPlate(c.UserContext(), c.Params("plateNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toResponse(found))
}

// ListByVendor returns all cars mapped to a vendor.
func (h *Handler) ListByVendor(c *fiber.Ctx) error {
	cars, err := h.service.ListByVendor(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	out := make([]carResponse, 0, len(cars))
	for _, item := range cars {
		out = append(out, toResponse(item))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"cars": out})
}

func toResponse(car Car) carResponse {
	return carResponse{
		ID:           car.ID,
		VendorPhone:  car.VendorPhone,
		Maker:        car.Maker,
		Model:        car.Model,
		PlateNo:      car.PlateNo,
		Seats:        car.Seats,
		Category:     car.Category,
		RegisteredAt: car.RegisteredAt.UTC().Format(time.RFC3339),
	}
}
