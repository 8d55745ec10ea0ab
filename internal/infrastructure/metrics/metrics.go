package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// Metrics holds all Prometheus metrics of a session.
type Metrics struct {
	// Operation metrics
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Transaction metrics
	TransactionsApplied  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec
	TransactionAmount    *prometheus.HistogramVec

	// Registry metrics
	CustomersCreated prometheus.Counter
	AccountsCreated  prometheus.Counter

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_operations_total",
				Help: "Total session operations by name and status",
			},
			[]string{"operation", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_operation_duration_seconds",
				Help:    "Duration of session operations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
			},
			[]string{"operation"},
		),

		TransactionsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transactions_applied_total",
				Help: "Total transactions applied by kind",
			},
			[]string{"kind"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transactions_rejected_total",
				Help: "Total transactions rejected by kind and reason",
			},
			[]string{"kind", "reason"},
		),
		TransactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_transaction_amount",
				Help:    "Applied transaction amounts",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
			},
			[]string{"kind"},
		),

		CustomersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_customers_created_total",
			Help: "Total number of customers created",
		}),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		gatherer: reg,
	}
}

// ObserveOperation records the outcome and duration of an operation.
func (m *Metrics) ObserveOperation(action domain.AuditAction, status domain.AuditStatus, duration time.Duration) {
	m.Operations.WithLabelValues(string(action), string(status)).Inc()
	m.OperationDuration.WithLabelValues(string(action)).Observe(duration.Seconds())
}

// ObserveTransaction records an applied or rejected transaction.
func (m *Metrics) ObserveTransaction(kind domain.TransactionKind, amount decimal.Decimal, err error) {
	if err != nil {
		m.TransactionsRejected.WithLabelValues(kind.String(), domain.ErrorCode(err)).Inc()
		return
	}

	m.TransactionsApplied.WithLabelValues(kind.String()).Inc()
	m.TransactionAmount.WithLabelValues(kind.String()).Observe(amount.InexactFloat64())
}

// CustomerCreated counts a new customer.
func (m *Metrics) CustomerCreated() {
	m.CustomersCreated.Inc()
}

// AccountCreated counts a new account.
func (m *Metrics) AccountCreated() {
	m.AccountsCreated.Inc()
}

// CounterSample is one labelled counter value.
type CounterSample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Counters returns every counter sample, sorted by name.
func (m *Metrics) Counters() ([]CounterSample, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	var out []CounterSample
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}

		for _, metric := range mf.GetMetric() {
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}

			out = append(out, CounterSample{
				Name:   mf.GetName(),
				Labels: labels,
				Value:  metric.GetCounter().GetValue(),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}
