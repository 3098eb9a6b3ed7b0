package jobs

import (
	"fmt"
	"log/slog"

	"shippingcost/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shippingReportJob *ShippingReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lister OrderQuotesLister,
	m *metrics.ShippingMetrics,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shippingReportJob: NewShippingReportJob(lister, m, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shippingReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipping report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shippingReportJob.Stop()
}
