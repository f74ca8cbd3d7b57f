package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultSettlementDigestSchedule runs at the top of every hour.
const DefaultSettlementDigestSchedule = "0 0 * * * *"

const runTimeout = 30 * time.Second

type settlementStatsReader interface {
	Handle(ctx context.Context, query queries.GetSettlementStatsQuery) (queries.GetSettlementStatsQueryResponse, error)
}

// SettlementDigestJob periodically logs how much is owed to vendors and how
// much has already been paid out.
type SettlementDigestJob struct {
	handler  settlementStatsReader
	actor    kernel.Actor
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSettlementDigestJob creates the job. actor must be an admin; schedule is
// a six-field cron expression and falls back to DefaultSettlementDigestSchedule.
func NewSettlementDigestJob(handler settlementStatsReader, actor kernel.Actor, schedule string, logger *slog.Logger) *SettlementDigestJob {
	if schedule == "" {
		schedule = DefaultSettlementDigestSchedule
	}
	return &SettlementDigestJob{
		handler:  handler,
		actor:    actor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "settlement_digest_job"),
	}
}

// RunOnce reads the settlement totals and logs them.
func (j *SettlementDigestJob) RunOnce(ctx context.Context) error {
	query, err := queries.NewGetSettlementStatsQuery(j.actor)
	if err != nil {
		return err
	}
	stats, err := j.handler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("read settlement stats: %w", err)
	}

	j.logger.InfoContext(ctx, "Settlement digest",
		slog.Int64("pending_count", stats.Pending.Count),
		slog.String("pending_amount", stats.Pending.Amount.String()),
		slog.Int64("paid_count", stats.Paid.Count),
		slog.String("paid_amount", stats.Paid.Amount.String()),
	)
	return nil
}

// Start schedules the digest.
func (j *SettlementDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Settlement digest job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement digest job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running digest to finish.
func (j *SettlementDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Settlement digest job stopped")
}
