package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand raises the dispute flag on an order.
type ReportIssueCommand struct {
	orderRef
	issue order.Issue

	guard guard.ConstructorGuard
}

func NewReportIssueCommand(actor kernel.Actor, orderID kernel.UUID, category, note string, expectedVersion int64) (ReportIssueCommand, error) {
	ref, refErr := newOrderRef(actor, orderID, expectedVersion)
	issue, issueErr := order.NewIssue(category, note)
	if err := errors.Join(refErr, issueErr); err != nil {
		return ReportIssueCommand{}, err
	}
	return ReportIssueCommand{orderRef: ref, issue: issue, guard: guard.NewConstructorGuard()}, nil
}

func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

func (c ReportIssueCommand) Issue() order.Issue { return c.issue }
