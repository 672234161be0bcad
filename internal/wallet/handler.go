package wallet

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	VendorPhone   string `json:"vendor_phone"`
	InitialAmount int64  `json:"initial_amount"`
}

type rechargeRequest struct {
	VendorPhone   string `json:"vendor_phone"`
	Scheme        string `json:"scheme"`
	Amount        *int64 `json:"amount"`
	Channel       string `json:"channel"`
	PaymentStatus string `json:"payment_status"`
}

type deductRequest struct {
	VendorPhone string `json:"vendor_phone"`
	Amount      *int64 `json:"amount"`
}

type accountResponse struct {
	VendorPhone string `json:"vendor_phone"`
	Scheme      string `json:"scheme"`
	Balance     int64  `json:"balance"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Active      bool   `json:"active"`
}

type paymentResponse struct {
	ID         string `json:"id"`
	Channel    string `json:"channel"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	RecordedAt string `json:"recorded_at"`
}

// Create provisions a wallet for an activated vendor.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	account, err := h.service.CreateWallet(c.UserContext(), req.VendorPhone, req.InitialAmount)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toAccountResponse(account))
}

// Recharge tops up a wallet under the requested billing scheme.
func (h *Handler) Recharge(c *fiber.Ctx) error {
	var req rechargeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	if req.Amount == nil {
		return apperr.InvalidArgument("amount is mandatory")
	}
	account, err := h.service.Recharge(c.UserContext(), RechargeInput{
		VendorPhone:   req.VendorPhone,
		Scheme:        req.Scheme,
		Amount:        *req.Amount,
		Channel:       req.Channel,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(account))
}

// Deduct debits a completed trip from the vendor wallet.
func (h *Handler) Deduct(c *fiber.Ctx) error {
	var req deductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.InvalidArgument("invalid request body: %v", err)
	}
	if req.Amount == nil {
		return apperr.InvalidArgument("amount is mandatory")
	}
	account, err := h.service.Debit(c.UserContext(), req.VendorPhone, *req.Amount)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(account))
}

// Detail returns the current wallet state.
func (h *Handler) Detail(c *fiber.Ctx) error {
	account, err := h.service.GetWalletDetail(c.UserContext(), c.Params("phoneNo"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(account))
}

// Payments returns the most recent payment history entries, newest first.
func (h *Handler) Payments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	history, err := h.service.GetPaymentHistory(c.UserContext(), c.Params("phoneNo"), limit)
	if err != nil {
		return err
	}
	payments := make([]paymentResponse, 0, len(history))
	for _, p := range history {
		payments = append(payments, paymentResponse{
			ID:         p.ID,
			Channel:    p.Channel,
			Amount:     p.Amount,
			Status:     p.Status,
			RecordedAt: p.RecordedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"vendor_phone": c.Params("phoneNo"),
		"payments":     payments,
	})
}

func toAccountResponse(account Account) accountResponse {
	return accountResponse{
		VendorPhone: account.VendorPhone,
		Scheme:      string(account.Scheme),
		Balance:     account.Balance,
		PeriodStart: account.PeriodStart.UTC().Format(time.RFC3339),
		PeriodEnd:   account.PeriodEnd.UTC().Format(time.RFC3339),
		Active:      account.Active,
	}
}
