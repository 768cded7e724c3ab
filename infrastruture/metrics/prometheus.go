package metrics

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ i.TrialRecorder = &Recorder{}

// Recorder exports trial outcomes as Prometheus metrics.
type Recorder struct {
	trialsTotal      *prometheus.CounterVec
	incompleteTotal  *prometheus.CounterVec
	failuresTotal    *prometheus.CounterVec
	repeatedSpaces   *prometheus.HistogramVec
	trialSteps       *prometheus.HistogramVec
	trialDuration    *prometheus.HistogramVec
	batchDuration    *prometheus.HistogramVec
	batchMeanRepeats *prometheus.GaugeVec
}

// NewRecorder registers the explorer metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		trialsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_trials_total",
			Help: "Total exploration trials recorded",
		}, []string{"map"}),

		incompleteTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_trials_incomplete_total",
			Help: "Trials that ended with reachable cells left unvisited",
		}, []string{"map"}),

		failuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_failures_total",
			Help: "Trials or batches that ended in an error",
		}, []string{"map"}),

		repeatedSpaces: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "explorer_trial_repeated_spaces",
			Help:    "Steps that landed on an already visited cell, per trial",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
		}, []string{"map"}),

		trialSteps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "explorer_trial_steps",
			Help:    "Moves taken per trial",
			Buckets: prometheus.ExponentialBuckets(4, 2, 10),
		}, []string{"map"}),

		trialDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "explorer_trial_duration_seconds",
			Help:    "Time spent on one trial",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"map"}),

		batchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "explorer_batch_duration_seconds",
			Help:    "Time to run and record a batch",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		}, []string{"map"}),

		batchMeanRepeats: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "explorer_batch_mean_repeated_spaces",
			Help: "Mean repeated spaces of the last batch",
		}, []string{"map"}),
	}
}

// ObserveTrial implements i.TrialRecorder.
func (r *Recorder) ObserveTrial(trial *dmn.Trial, elapsed time.Duration) {
	r.trialsTotal.WithLabelValues(trial.MapName).Inc()
	if !trial.Complete {
		r.incompleteTotal.WithLabelValues(trial.MapName).Inc()
	}
	r.repeatedSpaces.WithLabelValues(trial.MapName).Observe(float64(trial.RepeatedSpaces))
	r.trialSteps.WithLabelValues(trial.MapName).Observe(float64(trial.Steps))
	r.trialDuration.WithLabelValues(trial.MapName).Observe(elapsed.Seconds())
}

// ObserveBatch implements i.TrialRecorder. The batch's trials are observed
// one by one through ObserveTrial, so only batch-level series move here.
func (r *Recorder) ObserveBatch(summary *dmn.BatchSummary, elapsed time.Duration) {
	r.batchDuration.WithLabelValues(summary.MapName).Observe(elapsed.Seconds())
	r.batchMeanRepeats.WithLabelValues(summary.MapName).Set(summary.Mean)
}

// ObserveFailure implements i.TrialRecorder.
func (r *Recorder) ObserveFailure(mapName string) {
	r.failuresTotal.WithLabelValues(mapName).Inc()
}
