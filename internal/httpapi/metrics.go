package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanmou_games_started_total",
		Help: "Number of draft games created.",
	})
	recommendationsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanmou_recommendations_total",
		Help: "Number of set recommendations served.",
	})
	choicesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sanmou_choices_recorded_total",
		Help: "Number of round choices recorded across all games.",
	})
)
