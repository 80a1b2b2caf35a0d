package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Assignment engine counters
var (
	AssignmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline_crew",
		Name:      "assignments_created_total",
		Help:      "The total number of crew assignments created",
	})
	AssignmentsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline_crew",
		Name:      "assignments_cancelled_total",
		Help:      "The total number of crew assignments cancelled",
	})
	AssignmentConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline_crew",
		Name:      "assignment_conflicts_total",
		Help:      "The total number of candidates skipped due to conflicts or lost races",
	})
	AutoAssignRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airline_crew",
		Name:      "auto_assign_runs_total",
		Help:      "The total number of auto-assignment planner invocations",
	})
)

// HTTP metrics
var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "airline_crew",
		Name:      "http_request_duration_seconds",
		Help:      "Time taken to serve HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
