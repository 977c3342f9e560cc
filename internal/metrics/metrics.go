// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, restore jobs, backups,
// migrations, the content cache, the change feed and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "content_manager"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Restore job metrics
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "total",
			Help:      "Total number of restore jobs by backup type and final status",
		},
		[]string{"backup_type", "status"},
	)

	JobsInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "in_progress",
			Help:      "Number of restore jobs currently in progress",
		},
		[]string{"backup_type"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "duration_seconds",
			Help:      "Restore job duration in seconds",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"backup_type"},
	)

	// RecordsProcessed counts restored records per backup section
	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "processed_total",
			Help:      "Total number of restored records by section and result",
		},
		[]string{"section", "result"},
	)

	// Backup metrics - track streamed backup downloads
	BackupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backup",
			Name:      "total",
			Help:      "Total number of backups by type and result",
		},
		[]string{"type", "result"},
	)

	BackupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backup",
			Name:      "duration_seconds",
			Help:      "Backup streaming duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"type"},
	)

	BackupRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backup",
			Name:      "records_total",
			Help:      "Total number of records written into backups by type",
		},
		[]string{"type"},
	)

	BackupsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "backup",
			Name:      "in_flight",
			Help:      "Number of backups currently being streamed",
		},
	)

	// Migration metrics - one sample per reconciler run and per item outcome
	MigrationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "runs_total",
			Help:      "Total number of reconciler runs by mode and dry-run flag",
		},
		[]string{"mode", "dry_run"},
	)

	MigrationItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "items_total",
			Help:      "Total number of reconciled items by mode and result",
		},
		[]string{"mode", "result"},
	)

	MigrationRollbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "migration",
			Name:      "rollbacks_total",
			Help:      "Total number of archive rollbacks by result",
		},
		[]string{"result"},
	)

	// Content cache metrics
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Content cache lookups by result",
		},
		[]string{"result"},
	)

	CacheVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "version",
			Help:      "Current content cache version",
		},
	)

	// Realtime metrics
	RealtimeClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "clients",
			Help:      "Number of connected change feed clients",
		},
	)

	RealtimeEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "realtime",
			Name:      "events_total",
			Help:      "Total number of change events broadcast by type",
		},
		[]string{"type"},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a pool stats collector with a custom provider
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveJobCompletion records metrics when a restore job completes
func ObserveJobCompletion(backupType, status string, durationSeconds float64) {
	JobsTotal.WithLabelValues(backupType, status).Inc()
	JobDuration.WithLabelValues(backupType).Observe(durationSeconds)
}

// ObserveRecords records restored records of one backup section
func ObserveRecords(section string, successCount, failureCount int) {
	if successCount > 0 {
		RecordsProcessed.WithLabelValues(section, "success").Add(float64(successCount))
	}
	if failureCount > 0 {
		RecordsProcessed.WithLabelValues(section, "failure").Add(float64(failureCount))
	}
}

// StartJob increments the in-progress gauge for a restore job
func StartJob(backupType string) {
	JobsInProgress.WithLabelValues(backupType).Inc()
}

// EndJob decrements the in-progress gauge for a restore job
func EndJob(backupType string) {
	JobsInProgress.WithLabelValues(backupType).Dec()
}

// StartBackup starts tracking a streamed backup
func StartBackup() {
	BackupsInFlight.Inc()
}

// EndBackup ends tracking a streamed backup and records metrics
func EndBackup(backupType, result string, durationSeconds float64, recordCount int) {
	BackupsInFlight.Dec()
	BackupsTotal.WithLabelValues(backupType, result).Inc()
	BackupDuration.WithLabelValues(backupType).Observe(durationSeconds)
	if recordCount > 0 {
		BackupRecords.WithLabelValues(backupType).Add(float64(recordCount))
	}
}

// ObserveMigration records the tally of one reconciler run
func ObserveMigration(mode string, dryRun bool, succeeded, failed, skipped int) {
	dry := "false"
	if dryRun {
		dry = "true"
	}
	MigrationRunsTotal.WithLabelValues(mode, dry).Inc()
	for result, n := range map[string]int{"succeeded": succeeded, "failed": failed, "skipped": skipped} {
		if n > 0 {
			MigrationItemsTotal.WithLabelValues(mode, result).Add(float64(n))
		}
	}
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// Seconds returns the elapsed time in seconds
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// LogHealthCheckMetrics logs database pool stats at debug level
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	slog.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}
