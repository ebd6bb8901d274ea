package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "premium"

// PredictionCollector counts served predictions by category and failures by
// error code, and tracks inference latency.
type PredictionCollector struct {
	predictions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    prometheus.Histogram
}

func NewPredictionCollector(registerer prometheus.Registerer) *PredictionCollector {
	c := &PredictionCollector{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Number of served predictions by predicted category.",
		}, []string{"category"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_failures_total",
			Help:      "Number of failed predictions by error code.",
		}, []string{"code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Inference latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), //nolint:mnd
		}),
	}

	registerer.MustRegister(c.predictions, c.failures, c.duration)

	return c
}

func (c *PredictionCollector) ObservePrediction(category string, elapsed time.Duration) {
	c.predictions.WithLabelValues(category).Inc()
	c.duration.Observe(elapsed.Seconds())
}

func (c *PredictionCollector) ObserveFailure(code string, elapsed time.Duration) {
	c.failures.WithLabelValues(code).Inc()
	c.duration.Observe(elapsed.Seconds())
}
