package metrics

import "github.com/prometheus/client_golang/prometheus"

// PipelineMetrics counts the decisions the match orchestrator makes.
type PipelineMetrics struct {
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	quotaRejections  prometheus.Counter
	modelInvocations *prometheus.CounterVec
	matchDuration    prometheus.Histogram
}

func NewPipelineMetrics(registerer prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tonelify_match_cache_hits_total",
			Help: "Match requests served from the result cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tonelify_match_cache_misses_total",
			Help: "Match requests that required a fresh generation.",
		}),
		quotaRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tonelify_match_quota_rejections_total",
			Help: "Match requests rejected for exhausted allowance.",
		}),
		modelInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tonelify_model_invocations_total",
			Help: "Model calls by outcome.",
		}, []string{"outcome"}),
		matchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tonelify_match_duration_seconds",
			Help:    "End to end match pipeline duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	registerer.MustRegister(m.cacheHits, m.cacheMisses, m.quotaRejections, m.modelInvocations, m.matchDuration)
	return m
}

func (m *PipelineMetrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *PipelineMetrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *PipelineMetrics) QuotaRejected() {
	if m == nil {
		return
	}
	m.quotaRejections.Inc()
}

func (m *PipelineMetrics) ModelInvocation(outcome string) {
	if m == nil {
		return
	}
	m.modelInvocations.WithLabelValues(outcome).Inc()
}

func (m *PipelineMetrics) ObserveMatchDuration(seconds float64) {
	if m == nil {
		return
	}
	m.matchDuration.Observe(seconds)
}
