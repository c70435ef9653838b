package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	modelTrainsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_model_trains_total",
			Help: "Count of recommendation model training runs.",
		},
	)

	modelReusesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_model_reuses_total",
			Help: "Count of recommendation requests served from a persisted model.",
		},
	)

	recommendationsServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_recommendations_served_total",
			Help: "Total number of recommendation entries returned to callers.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		modelTrainsTotal,
		modelReusesTotal,
		recommendationsServedTotal,
	)
}
