package application

import "github.com/prometheus/client_golang/prometheus"

var (
	pollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expiryd_polls_total",
			Help: "Poll cycles by result.",
		},
		[]string{"result"},
	)
	pollDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "expiryd_poll_duration_seconds",
			Help:    "Duration of poll cycles including backend calls.",
			Buckets: prometheus.DefBuckets,
		},
	)
	alertGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "expiryd_alert_active",
			Help: "1 when the expiry alert is active, 0 otherwise.",
		},
	)
)

func init() {
	prometheus.MustRegister(pollsTotal)
	prometheus.MustRegister(pollDuration)
	prometheus.MustRegister(alertGauge)
}
