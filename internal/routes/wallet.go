package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ride-mitra/ride_mitra/internal/wallet"
)

// RegisterWalletRoutes wires the vendor wallet ledger endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Post("/wallets", h.Create)
	r.Put("/wallets/recharge", h.Recharge)
	r.Post("/wallets/deduct", h.Deduct)
	r.Get("/wallets/:phoneNo", h.Detail)
	r.Get("/wallets/:phoneNo/payments", h.Payments)
}
