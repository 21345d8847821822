// Package urlmetrics exposes Prometheus counters for security-relevant
// resolution outcomes: unknown schemes, paths that climb past the root,
// and synthesized placeholder authorities.
package urlmetrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/urlscope/urlscope-core/urlvalue"
)

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlscope_resolutions_total",
			Help: "Total number of URL resolutions observed",
		},
		[]string{"scheme", "known"},
	)

	undecomposableTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlscope_undecomposable_total",
			Help: "Total number of observed URLs that could not be decomposed",
		},
	)

	rootTraversalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlscope_root_traversals_total",
			Help: "Total number of observed URLs whose path climbed past the resolution root",
		},
		[]string{"scheme"},
	)

	placeholderAuthoritiesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlscope_placeholder_authorities_total",
			Help: "Total number of observed URLs that were given a placeholder authority",
		},
		[]string{"scheme"},
	)
)

// Observe records the outcome of one resolution. A nil value records
// nothing.
func Observe(v *urlvalue.Value) {
	if v == nil {
		return
	}

	s := v.Scheme()
	resolutionsTotal.With(prometheus.Labels{
		"scheme": s.Name(),
		"known":  strconv.FormatBool(s.Known()),
	}).Inc()

	if !v.Ranges().Decomposed() {
		undecomposableTotal.Inc()
	}
	if v.ReachesRootsParent() {
		rootTraversalsTotal.With(prometheus.Labels{"scheme": s.Name()}).Inc()
	}
	if v.InheritsPlaceholderAuthority() {
		placeholderAuthoritiesTotal.With(prometheus.Labels{"scheme": s.Name()}).Inc()
	}
}
