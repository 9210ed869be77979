package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the engine's collectors. A nil *Registry is valid and records nothing.
type Registry struct {
	reg            *prometheus.Registry
	Resolutions    *prometheus.CounterVec
	CacheLookups   *prometheus.CounterVec
	GuardDecisions *prometheus.CounterVec
	RefreshTasks   *prometheus.CounterVec
	OpenViews      prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_resolutions_total",
		Help: "Provider pricing resolutions by the precedence step that produced the prices.",
	}, []string{"source"})
	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_cache_lookups_total",
	}, []string{"result"})
	guardDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_guard_decisions_total",
	}, []string{"kind", "reason"})
	refreshTasks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_refresh_tasks_total",
	}, []string{"result"})
	openViews := prometheus.NewGauge(prometheus.GaugeOpts{Name: "provider_view_sessions_open"})

	r.MustRegister(resolutions, cacheLookups, guardDecisions, refreshTasks, openViews)
	return &Registry{
		reg:            r,
		Resolutions:    resolutions,
		CacheLookups:   cacheLookups,
		GuardDecisions: guardDecisions,
		RefreshTasks:   refreshTasks,
		OpenViews:      openViews,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

func (r *Registry) ObserveResolution(source string) {
	if r == nil {
		return
	}
	r.Resolutions.WithLabelValues(source).Inc()
}

// ObserveCacheLookup records "hit", "miss" or "error".
func (r *Registry) ObserveCacheLookup(result string) {
	if r == nil {
		return
	}
	r.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveGuardDecision records one guard outcome; allowed attempts use reason "allowed".
func (r *Registry) ObserveGuardDecision(kind, reason string) {
	if r == nil {
		return
	}
	if reason == "" {
		reason = "allowed"
	}
	r.GuardDecisions.WithLabelValues(kind, reason).Inc()
}

func (r *Registry) ObserveRefreshTask(result string) {
	if r == nil {
		return
	}
	r.RefreshTasks.WithLabelValues(result).Inc()
}

func (r *Registry) SetOpenViews(n int) {
	if r == nil {
		return
	}
	r.OpenViews.Set(float64(n))
}
