package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
)

// Schedules holds the cron expressions of every job. Empty values use the
// job defaults.
type Schedules struct {
	SettlementDigest string
	IssueDigest      string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementDigestJob *SettlementDigestJob
	issueDigestJob      *IssueDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// The jobs run their queries as actor, which must be an admin.
func NewJobManager(
	settlementStats settlementStatsReader,
	dashboard dashboardReader,
	actor kernel.Actor,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementDigestJob: NewSettlementDigestJob(settlementStats, actor, schedules.SettlementDigest, logger),
		issueDigestJob:      NewIssueDigestJob(dashboard, actor, schedules.IssueDigest, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement digest job: %w", err)
	}

	if err := jm.issueDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.settlementDigestJob.Stop()
		return fmt.Errorf("failed to start issue digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.issueDigestJob.Stop()
	jm.settlementDigestJob.Stop()
}
