// Package metrics provides Prometheus metrics for the awards service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultRefreshInterval = 10 * time.Second
)

// Team-count buckets cover anything from a scrimmage to a world championship
// division.
var teamBuckets = []float64{0, 1, 2, 5, 10, 20, 40, 60, 80, 100, 150, 200, 300}

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Evaluation metrics
	evaluations       *prometheus.CounterVec
	evaluationLatency *prometheus.HistogramVec
	attendingTeams    *prometheus.HistogramVec
	eligibleTeams     *prometheus.HistogramVec
	poolSize          *prometheus.HistogramVec
	evaluationErrors  *prometheus.CounterVec

	// Snapshot store metrics
	snapshotsTotal     prometheus.Gauge
	snapshotWrites     prometheus.Counter
	snapshotDeletes    prometheus.Counter
	snapshotRejections prometheus.Counter
	snapshotTeams      prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// customRegistry keeps default Go collectors out of the exposition.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "awards",
		subsystem:        "eligibility",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// Enabled reports whether recording is active.
func (m *Manager) Enabled() bool { return m.enabled }

// RefreshInterval is how often background gauges should be refreshed.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: m.name(name), Help: help, ConstLabels: m.customLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: m.name(name), Help: help, ConstLabels: m.customLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: m.name(name), Help: help, Buckets: buckets, ConstLabels: m.customLabels}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.evaluations = auto.NewCounterVec(
		m.counterOpts("evaluations_total", "Total number of eligibility evaluations by program"),
		[]string{"program", "grade_split"},
	)
	m.evaluationLatency = auto.NewHistogramVec(
		m.histogramOpts("evaluation_latency_milliseconds", "Eligibility evaluation latency in milliseconds", m.histogramBuckets),
		[]string{"program"},
	)
	m.attendingTeams = auto.NewHistogramVec(
		m.histogramOpts("attending_teams", "Attending teams per evaluation", teamBuckets),
		[]string{"program"},
	)
	m.eligibleTeams = auto.NewHistogramVec(
		m.histogramOpts("eligible_teams", "Eligible teams per evaluation", teamBuckets),
		[]string{"program"},
	)
	m.poolSize = auto.NewHistogramVec(
		m.histogramOpts("pool_size", "Ranking pool sizes by criterion", teamBuckets),
		[]string{"criterion"},
	)
	m.evaluationErrors = auto.NewCounterVec(
		m.counterOpts("evaluation_errors_total", "Evaluations rejected before the engine ran"),
		[]string{"reason"},
	)

	m.snapshotsTotal = auto.NewGauge(m.gaugeOpts("snapshots", "Event snapshots currently stored"))
	m.snapshotWrites = auto.NewCounter(m.counterOpts("snapshot_writes_total", "Total snapshot writes"))
	m.snapshotDeletes = auto.NewCounter(m.counterOpts("snapshot_deletes_total", "Total snapshot deletions"))
	m.snapshotRejections = auto.NewCounter(m.counterOpts("snapshot_rejections_total", "Snapshot writes rejected at capacity"))
	m.snapshotTeams = auto.NewHistogram(m.histogramOpts("snapshot_roster_size", "Roster size of stored snapshots", teamBuckets))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Errors by type and severity"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of failed operations in milliseconds", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	))
}

// RecordEvaluation records one completed evaluation.
func (m *Manager) RecordEvaluation(program string, gradeSplit bool, attending, eligible int, latencyMs float64) {
	if !m.enabled {
		return
	}
	split := "false"
	if gradeSplit {
		split = "true"
	}
	m.evaluations.WithLabelValues(program, split).Inc()
	m.evaluationLatency.WithLabelValues(program).Observe(latencyMs)
	m.attendingTeams.WithLabelValues(program).Observe(float64(attending))
	m.eligibleTeams.WithLabelValues(program).Observe(float64(eligible))
}

// RecordEvaluation records one completed evaluation on the global manager.
func RecordEvaluation(program string, gradeSplit bool, attending, eligible int, latencyMs float64) {
	globalManager.RecordEvaluation(program, gradeSplit, attending, eligible, latencyMs)
}

// RecordPoolSize records the size of one ranking pool.
func RecordPoolSize(criterion string, size int) {
	if !globalManager.enabled {
		return
	}
	globalManager.poolSize.WithLabelValues(criterion).Observe(float64(size))
}

// RecordEvaluationError counts an evaluation rejected for reason.
func RecordEvaluationError(reason string) {
	if !globalManager.enabled {
		return
	}
	globalManager.evaluationErrors.WithLabelValues(reason).Inc()
}

// UpdateSnapshotsTotal sets the number of stored snapshots.
func UpdateSnapshotsTotal(count int) {
	globalManager.snapshotsTotal.Set(float64(count))
}

// RecordSnapshotWrite counts a stored snapshot and its roster size.
func RecordSnapshotWrite(rosterSize int) {
	if !globalManager.enabled {
		return
	}
	globalManager.snapshotWrites.Inc()
	globalManager.snapshotTeams.Observe(float64(rosterSize))
}

// RecordSnapshotDelete counts a removed snapshot.
func RecordSnapshotDelete() {
	if !globalManager.enabled {
		return
	}
	globalManager.snapshotDeletes.Inc()
}

// RecordSnapshotRejected counts a write refused at capacity.
func RecordSnapshotRejected() {
	if !globalManager.enabled {
		return
	}
	globalManager.snapshotRejections.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType increments errors by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint increments errors by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of a failed operation.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry behind the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
