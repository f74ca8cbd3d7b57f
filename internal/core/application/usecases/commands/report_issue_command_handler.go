package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type ReportIssueCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReportIssueCommandHandler(uowFactory OrderUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{uowFactory: uowFactory}
}

func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return mutateOrder(ctx, h.uowFactory, cmd.orderRef, func(o *order.Order) error {
		return o.ReportIssue(cmd.Actor(), cmd.Issue(), time.Now().UTC())
	})
}
