// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Every job is read-only: it runs a reporting query and logs the result.
//
// # Available Jobs
//
// 1. SettlementDigestJob - logs pending and paid vendor payout totals (hourly by default)
// 2. IssueDigestJob - logs the number of orders with an open issue (every 15 minutes by default)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, dashboardHandler, systemActor, jobs.Schedules{
//		SettlementDigest: cfg.SettlementDigestCron,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first), e.g. "0 0 * * * *".
//
// # Error Handling
//
// - Query failures are logged and the next tick runs as usual
// - An invalid schedule fails StartAll and stops any already running jobs
package jobs
