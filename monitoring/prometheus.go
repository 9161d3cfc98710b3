package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type RejectedReason string

var (
	RejectedUnauthorizedAdd  RejectedReason = "unauthorized_add"
	RejectedUnauthorizedMine RejectedReason = "unauthorized_mine"
)

type ledgerPromMetrics struct {
	blocksMined        prometheus.Counter
	hashesComputed     prometheus.Counter
	miningDuration     prometheus.Histogram
	chainHeight        prometheus.Gauge
	pendingSize        prometheus.Gauge
	rejectedCount      *prometheus.CounterVec
	discardedEntries   prometheus.Counter
	certificatesSealed prometheus.Counter
}

func newLedgerPromMetrics() *ledgerPromMetrics {
	return &ledgerPromMetrics{
		blocksMined: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "certledger_blocks_mined_total",
				Help: "The total number of blocks sealed by proof-of-work",
			},
		),
		hashesComputed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "certledger_pow_hashes_total",
				Help: "The total number of digests computed while mining",
			},
		),
		miningDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "certledger_pow_duration_seconds",
				Help:    "Wall time spent searching for a nonce",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		chainHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "certledger_chain_height",
				Help: "Number of blocks in the chain, genesis included",
			},
		),
		pendingSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "certledger_pending_entries",
				Help: "Entries staged and waiting for the next mined block",
			},
		),
		rejectedCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "certledger_rejected_operations_total",
				Help: "The total number of rejected chain operations",
			},
			[]string{"reason"},
		),
		discardedEntries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "certledger_discarded_entries_total",
				Help: "Pending entries dropped by unauthorised mining attempts",
			},
		),
		certificatesSealed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "certledger_certificates_sealed_total",
				Help: "Certificates included in mined blocks",
			},
		),
	}
}

var (
	metricsOnce   sync.Once
	ledgerMetrics *ledgerPromMetrics
)

func metrics() *ledgerPromMetrics {
	metricsOnce.Do(func() {
		ledgerMetrics = newLedgerPromMetrics()
	})
	return ledgerMetrics
}

// InitMetrics registers the collectors with the default registry. Calling
// it is optional; every recorder initialises lazily.
func InitMetrics() {
	metrics()
}

func RecordBlockMined(duration time.Duration, hashes uint64) {
	m := metrics()
	m.blocksMined.Inc()
	m.hashesComputed.Add(float64(hashes))
	m.miningDuration.Observe(duration.Seconds())
}

func RecordCertificatesSealed(count int) {
	metrics().certificatesSealed.Add(float64(count))
}

func SetChainHeight(height int) {
	metrics().chainHeight.Set(float64(height))
}

func SetPendingSize(size int) {
	metrics().pendingSize.Set(float64(size))
}

func RecordRejected(reason RejectedReason) {
	metrics().rejectedCount.With(prometheus.Labels{
		"reason": string(reason),
	}).Inc()
}

func RecordDiscarded(count int) {
	metrics().discardedEntries.Add(float64(count))
}
