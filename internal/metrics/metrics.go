package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PurchasesTotal counts buy-ticket outcomes by status
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raffle_purchases_total",
			Help: "Total number of ticket purchase attempts",
		},
		[]string{"status"},
	)

	// PaymentVerifications counts on-chain payment checks by result
	PaymentVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raffle_payment_verifications_total",
			Help: "Total number of on-chain payment verifications",
		},
		[]string{"result"},
	)

	// OracleRequestDuration tracks receipt lookups against the chain node
	OracleRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "raffle_oracle_request_duration_seconds",
			Help:    "Duration of transaction receipt lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// TicketAllocationAttempts tracks how many random probes an allocation needed
	TicketAllocationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "raffle_ticket_allocation_attempts",
			Help:    "Number of candidate ids probed per ticket allocation",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 35, 50},
		},
	)

	// DrawsTotal counts draw-winner outcomes by status
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raffle_draws_total",
			Help: "Total number of winner draw attempts",
		},
		[]string{"status"},
	)

	// TicketsSold is the current number of issued tickets
	TicketsSold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "raffle_tickets_sold",
			Help: "Number of tickets issued",
		},
	)
)
