// Package metrics records service counters for Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector receives events from the HTTP layer.
type Collector interface {
	RecordQuote(mode string, belowMin bool)
	RecordSolve(state string)
	RecordLogin(result string)
	RecordCommit(result string)
	SetActiveSessions(n int)
}

// NoopCollector is a no-op implementation of Collector
type NoopCollector struct{}

func (NoopCollector) RecordQuote(string, bool) {}
func (NoopCollector) RecordSolve(string)       {}
func (NoopCollector) RecordLogin(string)       {}
func (NoopCollector) RecordCommit(string)      {}
func (NoopCollector) SetActiveSessions(int)    {}

var quotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "seb",
	Subsystem: "fee",
	Name:      "quotes_total",
	Help:      "Total fee quotes computed, by mode and minimum-billing flag.",
}, []string{"mode", "below_min"})

var solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "seb",
	Subsystem: "calculator",
	Name:      "solves_total",
	Help:      "Total calculator solves by resulting state.",
}, []string{"state"})

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "seb",
	Subsystem: "calculator",
	Name:      "active_sessions",
	Help:      "Current number of server-held calculator sessions.",
})

var loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "seb",
	Subsystem: "admin",
	Name:      "logins_total",
	Help:      "Total admin login attempts by result.",
}, []string{"result"})

var commitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "seb",
	Subsystem: "settings",
	Name:      "commits_total",
	Help:      "Total settings commits by result.",
}, []string{"result"})

// PrometheusCollector records into the default Prometheus registry.
type PrometheusCollector struct{}

func (PrometheusCollector) RecordQuote(mode string, belowMin bool) {
	quotesTotal.WithLabelValues(mode, strconv.FormatBool(belowMin)).Inc()
}

func (PrometheusCollector) RecordSolve(state string) {
	solvesTotal.WithLabelValues(state).Inc()
}

func (PrometheusCollector) RecordLogin(result string) {
	loginsTotal.WithLabelValues(result).Inc()
}

func (PrometheusCollector) RecordCommit(result string) {
	commitsTotal.WithLabelValues(result).Inc()
}

func (PrometheusCollector) SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
