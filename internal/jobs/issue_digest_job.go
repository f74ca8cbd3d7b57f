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

// DefaultIssueDigestSchedule runs every fifteen minutes.
const DefaultIssueDigestSchedule = "0 */15 * * * *"

type dashboardReader interface {
	Handle(ctx context.Context, query queries.AdminDashboardQuery) (queries.AdminDashboardQueryResponse, error)
}

// IssueDigestJob logs the open dispute backlog so it shows up in alerting
// before customers chase it.
type IssueDigestJob struct {
	handler  dashboardReader
	actor    kernel.Actor
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewIssueDigestJob(handler dashboardReader, actor kernel.Actor, schedule string, logger *slog.Logger) *IssueDigestJob {
	if schedule == "" {
		schedule = DefaultIssueDigestSchedule
	}
	return &IssueDigestJob{
		handler:  handler,
		actor:    actor,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "issue_digest_job"),
	}
}

// RunOnce logs the open-issue count. An empty backlog is logged at debug level.
func (j *IssueDigestJob) RunOnce(ctx context.Context) error {
	query, err := queries.NewAdminDashboardQuery(j.actor, j.now())
	if err != nil {
		return err
	}
	dashboard, err := j.handler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("read dashboard: %w", err)
	}

	level := slog.LevelWarn
	if dashboard.IssueOrders == 0 {
		level = slog.LevelDebug
	}
	j.logger.Log(ctx, level, "Issue digest",
		slog.Int64("open_issues", dashboard.IssueOrders),
		slog.Int64("pending_orders", dashboard.PendingOrders),
		slog.Int64("processing_orders", dashboard.ProcessingOrders),
	)
	return nil
}

func (j *IssueDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Issue digest job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Issue digest job started", "schedule", j.schedule)
	return nil
}

func (j *IssueDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Issue digest job stopped")
}
