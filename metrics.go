package seolens

import "github.com/prometheus/client_golang/prometheus"

func setupMetrics() (
	fetchSummaryVec *prometheus.SummaryVec,
	fetchCounterVec *prometheus.CounterVec,
	analysisCounter prometheus.Counter,
	scoreSummary prometheus.Summary,
) {

	const prometheusLabelStrategy = "strategy"
	const prometheusLabelOutcome = "outcome"

	fetchSummaryVec = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "seolens_fetch_durations_seconds",
			Help:       "fetch duration whole request time including streaming of body",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{prometheusLabelStrategy},
	)

	fetchCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seolens_fetch_total",
			Help: "Number of fetch attempts by strategy and outcome.",
		},
		[]string{prometheusLabelStrategy, prometheusLabelOutcome},
	)

	analysisCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seolens_analyses_total",
		Help: "number of documents analyzed since start",
	})

	scoreSummary = prometheus.NewSummary(prometheus.SummaryOpts{
		Name: "seolens_score",
		Help: "distribution of seo scores",
	})

	prometheus.MustRegister(
		fetchSummaryVec,
		fetchCounterVec,
		analysisCounter,
		scoreSummary,
	)

	return
}

var metricFetchDurations, metricFetches, metricAnalyses, metricScores = setupMetrics()
