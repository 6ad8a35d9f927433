package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestCount counts HTTP requests
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	// BatchCount counts MCQ batch gradings
	BatchCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcq_batches_total",
			Help: "Total number of MCQ batch gradings",
		},
		[]string{"status"},
	)

	// SheetsGraded counts individual answer sheets graded
	SheetsGraded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mcq_sheets_graded_total",
			Help: "Total number of answer sheets graded",
		},
	)

	// BatchDuration measures batch grading duration
	BatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "mcq_batch_duration_seconds",
			Help: "MCQ batch grading duration in seconds",
		},
	)

	// AnalysisCount counts document analyses by type and outcome
	AnalysisCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_analyses_total",
			Help: "Total number of document analyses",
		},
		[]string{"type", "status"},
	)
)

// InitPrometheus registers all collectors with the default registry.
func InitPrometheus() {
	prometheus.MustRegister(RequestCount)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(BatchCount)
	prometheus.MustRegister(SheetsGraded)
	prometheus.MustRegister(BatchDuration)
	prometheus.MustRegister(AnalysisCount)
}
