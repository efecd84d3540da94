package tracker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"example.com/ftracker/internal/domain"
)

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "trainings_processed_total",
		Help:      "Number of sensor packages turned into a training summary.",
	}, []string{"code"})

	errorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "training_errors_total",
		Help:      "Number of sensor packages rejected, grouped by reason.",
	}, []string{"reason"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "calories_kcal",
		Help:      "Calories spent per training.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600},
	}, []string{"code"})

	lastRunGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the most recent completed run.",
	})
)

func init() {
	prometheus.MustRegister(processedCounter, errorCounter, caloriesHistogram, lastRunGauge)
}

func recordProcessed(info domain.InfoMessage, code domain.Code) {
	processedCounter.WithLabelValues(string(code)).Inc()
	caloriesHistogram.WithLabelValues(string(code)).Observe(info.CaloriesKcal)
}

func recordError(err error) {
	errorCounter.WithLabelValues(errorReason(err)).Inc()
}

func recordRunCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastRunGauge.Set(float64(ts.Unix()))
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownActivityCode):
		return "unknown_code"
	case errors.Is(err, domain.ErrParameterCount):
		return "parameter_count"
	case errors.Is(err, domain.ErrInvalidParameter):
		return "invalid_parameter"
	}
	return "other"
}

// DumpMetrics writes every metric family from gatherer to w in the Prometheus text format.
func DumpMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
