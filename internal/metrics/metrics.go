package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WalletRecharges counts successful wallet recharges by billing scheme.
	WalletRecharges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_recharges_total",
		Help: "Successful wallet recharges partitioned by billing scheme.",
	}, []string{"scheme"})

	// WalletUpdateConflicts counts optimistic-lock clashes observed while
	// applying wallet updates. A high rate means heavy per-vendor contention.
	WalletUpdateConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_update_conflicts_total",
		Help: "Version conflicts hit while committing wallet account updates.",
	})

	// WalletDebits counts successful trip deductions.
	WalletDebits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_debits_total",
		Help: "Successful wallet debits for completed trips.",
	})

	// PaymentRecords counts audit records appended to the payment history.
	PaymentRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_payment_records_total",
		Help: "Payment audit records appended, including orphaned ones.",
	})
)

// Handler exposes the Prometheus scrape endpoint as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
