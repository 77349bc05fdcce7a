package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the batch loaders

var (
	// Row flow metrics
	RowsReadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_rows_read_total",
			Help: "Total number of source rows read",
		},
		[]string{"loader"},
	)

	RowsUnmatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_rows_unmatched_total",
			Help: "Total number of source rows dropped because no canonical row matched",
		},
		[]string{"loader"},
	)

	RowsInsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_rows_inserted_total",
			Help: "Total number of rows committed to the destination table",
		},
		[]string{"loader"},
	)

	IDsNullifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_ids_nullified_total",
			Help: "Total number of names whose external id was ambiguous",
		},
		[]string{"loader"},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "table", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nbaload_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	TableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nbaload_table_rows",
			Help: "Row count of a destination table after the last load",
		},
		[]string{"table"},
	)

	// Job metrics
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nbaload_job_runs_total",
			Help: "Total number of job runs",
		},
		[]string{"loader", "status"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nbaload_job_duration_seconds",
			Help:    "Duration of job runs in seconds",
			Buckets: []float64{.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"loader"},
	)

	LastSuccessfulLoad = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nbaload_last_successful_load_timestamp",
			Help: "Timestamp of the last successful load",
		},
		[]string{"loader"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table, status string, duration float64) {
	DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration)
}

// RecordRows records the row flow of one job run
func RecordRows(job string, read, unmatched, inserted, nullified int) {
	RowsReadTotal.WithLabelValues(job).Add(float64(read))
	RowsUnmatchedTotal.WithLabelValues(job).Add(float64(unmatched))
	RowsInsertedTotal.WithLabelValues(job).Add(float64(inserted))
	IDsNullifiedTotal.WithLabelValues(job).Add(float64(nullified))
}

// RecordJob records a finished job run
func RecordJob(job, status string, duration float64) {
	JobRunsTotal.WithLabelValues(job, status).Inc()
	JobDuration.WithLabelValues(job).Observe(duration)

	if status == "success" {
		LastSuccessfulLoad.WithLabelValues(job).SetToCurrentTime()
	}
}

// UpdateTableRows records the current size of a destination table
func UpdateTableRows(table string, rows int64) {
	TableRows.WithLabelValues(table).Set(float64(rows))
}
