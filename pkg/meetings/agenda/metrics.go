package agenda

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Evaluation metrics. Unparseable labels are worth watching: they degrade
// silently to the past bucket rather than surfacing as errors.
var (
	evaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "samu",
		Subsystem: "agenda",
		Name:      "filter_evaluations_total",
		Help:      "Number of filter evaluation passes over the meeting listing",
	})

	unparseableLabelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "samu",
		Subsystem: "agenda",
		Name:      "unparseable_datetime_labels_total",
		Help:      "Number of display datetime labels that failed to parse during evaluation",
	})
)
