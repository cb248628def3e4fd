// Package jobs provides scheduled background tasks for the laundry order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. MetricsReportJob - Logs platform-wide completion rate, earnings and delivery counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(computeMetricsHandler, "0 0 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The metrics report runs hourly unless METRICS_REPORT_SCHEDULE overrides it.
//
// # Error Handling
//
// - A failed report is logged and retried on the next tick
// - An invalid schedule makes StartAll fail
package jobs
