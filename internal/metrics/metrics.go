// Package metrics exposes Prometheus counters for connection policy
// decisions and generated URL rewrites.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-secure-routes/models"
)

const subsystem = "secure_routes"

var (
	metricVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "verdicts_total",
		Help:      "Connection policy verdicts by kind and observed protocol",
	},
		[]string{
			"kind",
			"protocol",
		},
	)
	metricURLRewrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "url_rewrites_total",
		Help:      "Generated URLs prefixed with an absolute origin, by scheme",
	},
		[]string{
			"scheme",
		},
	)
	metricAnnotatedRules = promauto.NewGauge(prometheus.GaugeOpts{
		Subsystem: subsystem,
		Name:      "annotated_rules",
		Help:      "Routing rules bound to an absolute origin at startup",
	})
)

// ObserveVerdict counts a policy verdict taken on conn.
func ObserveVerdict(v models.Verdict, conn models.ConnectionState) {
	metricVerdicts.WithLabelValues(v.Kind.String(), conn.Protocol.Scheme()).Inc()
}

// ObserveRewrite counts a rewrite decision. Unchanged decisions are ignored.
func ObserveRewrite(d models.RewriteDecision) {
	if d.Unchanged() {
		return
	}
	scheme, _, _ := strings.Cut(d.Origin, "://")
	metricURLRewrites.WithLabelValues(scheme).Inc()
}

// AddAnnotatedRules records rules bound by an annotation pass.
func AddAnnotatedRules(n int) {
	metricAnnotatedRules.Add(float64(n))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
