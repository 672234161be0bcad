package customer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Handler exposes customer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a customer HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerResponse struct {
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// Create registers a customer profile.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	customer, err := h.service.Create(c.UserContext(), CreateInput{Phone: req.Phone, Name: req.Name, Email: req.Email})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(customerResponse{Phone: customer.Phone, Name: customer.Name, Email: customer.Email, Active: customer.Active})
}

// Activate re-enables a customer profile.
func (h *Handler) Activate(c *fiber.Ctx) error {
	customer, err := h.service.Activate(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(customerResponse{Phone: customer.Phone, Name: customer.Name, Email: customer.Email, Active: customer.Active})
}

// Deactivate suspends a customer profile.
func (h *Handler) Deactivate(c *fiber.Ctx) error {
	customer, err := h.service.Deactivate(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(customerResponse{Phone: customer.Phone, Name: customer.Name, Email: customer.Email, Active: customer.Active})
}

// Get returns a customer profile.
func (h *Handler) Get(c *fiber.Ctx) error {
	customer, err := h.service.Get(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(customerResponse{Phone: customer.Phone, Name: customer.Name, Email: customer.Email, Active: customer.Active})
}
