package wager

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects processor statistics.
type Metrics struct {
	// The number of executed transactions by command and result.
	Transactions *prometheus.CounterVec

	// The lamports paid out by claims.
	Payouts prometheus.Counter
}

// NewMetrics will create the metrics and register them with the provided
// registerer if available.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	// create metrics
	m := &Metrics{
		Transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wager",
			Name:      "transactions_total",
			Help:      "The number of executed transactions.",
		}, []string{"command", "result"}),
		Payouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wager",
			Name:      "payouts_lamports_total",
			Help:      "The number of lamports paid out by claims.",
		}),
	}

	// register metrics
	if reg != nil {
		reg.MustRegister(m.Transactions, m.Payouts)
	}

	return m
}
