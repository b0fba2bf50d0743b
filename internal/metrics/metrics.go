// Package metrics exposes Prometheus collectors for random string generation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GoRandomString/GoRandomString/internal/generator"
)

const namespace = "randomstring"

// Sources of a generation.
const (
	SourceHTTP = "http"
	SourceCLI  = "cli"
)

// KindInvalidRequest is recorded for requests rejected before they reach the generator,
// like malformed input, exceeded limits or values the hash algorithm can not take.
const KindInvalidRequest = "invalid_request"

// Recorder records generation outcomes.
type Recorder struct {
	generated *prometheus.CounterVec
	errors    *prometheus.CounterVec
	length    prometheus.Histogram
}

// NewRecorder registers the generation collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Number of generated random strings.",
		}, []string{"source"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_errors_total",
			Help:      "Number of failed generations, by error kind.",
		}, []string{"source", "kind"}),
		length: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generated_length",
			Help:      "Length in characters of generated random strings.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10), //nolint:mnd
		}),
	}
}

// Generated records count strings of length characters.
func (r *Recorder) Generated(source string, length, count int) {
	r.generated.WithLabelValues(source).Add(float64(count))

	for range count {
		r.length.Observe(float64(length))
	}
}

// Failed records a failed generation, labeled with the generator error kind.
func (r *Recorder) Failed(source string, err error) {
	r.Rejected(source, generator.Kind(err))
}

// Rejected records a failed generation of the given kind.
func (r *Recorder) Rejected(source, kind string) {
	r.errors.WithLabelValues(source, kind).Inc()
}
