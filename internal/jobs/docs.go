// Package jobs provides scheduled background tasks for the shipping cost service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ShippingReportJob - Summarizes stored orders per shipping method and refreshes
// the shipping gauges in internal/pkg/metrics
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getAllOrderQuotesHandler, shippingMetrics, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field.
// The report defaults to DefaultReportSchedule (once a minute).
//
// # Error Handling
//
// A failed report run is logged and the next run proceeds as scheduled.
package jobs
