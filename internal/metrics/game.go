package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slot_rolls_total",
			Help: "Total rolls by result and outcome",
		},
		[]string{"result", "outcome"},
	)

	rollDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slot_roll_duration_ms",
			Help:    "Roll processing duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"result"},
	)

	suppressionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_suppressions_total",
		Help: "Winning draws replaced by the suppression rule",
	})

	redrawCapTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_redraw_cap_reached_total",
		Help: "Suppression loops stopped by max_redraws",
	})

	payoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_payout_credits_total",
		Help: "Credits paid out by winning rolls",
	})

	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_sessions_created_total",
		Help: "Sessions created",
	})

	cashOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_cashouts_total",
		Help: "Sessions closed by cash out",
	})

	cashOutCredits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_cashout_credits_total",
		Help: "Credits returned to players on cash out",
	})
)

// RecordRoll - метрики спина.
// result: "success" | "fail"; outcome: "win" | "loss" | "" для неуспешных
func RecordRoll(result, outcome string, started time.Time) {
	if result != "success" {
		result = "fail"
	}
	if outcome == "" {
		outcome = "none"
	}
	rollsTotal.WithLabelValues(result, outcome).Inc()
	rollDuration.WithLabelValues(result).Observe(float64(time.Since(started).Milliseconds()))
}

func RecordSuppression()    { suppressionsTotal.Inc() }
func RecordRedrawCap()      { redrawCapTotal.Inc() }
func RecordSessionCreated() { sessionsCreated.Inc() }

func RecordPayout(credits int) {
	if credits > 0 {
		payoutsTotal.Add(float64(credits))
	}
}

func RecordCashOut(credits int) {
	cashOutsTotal.Inc()
	if credits > 0 {
		cashOutCredits.Add(float64(credits))
	}
}
