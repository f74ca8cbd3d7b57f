package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrResolveIssueCommandIsNotConstructed = errors.New(
	"ResolveIssueCommand must be created via NewResolveIssueCommand constructor",
)

// ResolveIssueCommand clears the dispute flag.
type ResolveIssueCommand struct {
	orderRef

	guard guard.ConstructorGuard
}

func NewResolveIssueCommand(actor kernel.Actor, orderID kernel.UUID, expectedVersion int64) (ResolveIssueCommand, error) {
	ref, err := newOrderRef(actor, orderID, expectedVersion)
	if err != nil {
		return ResolveIssueCommand{}, err
	}
	return ResolveIssueCommand{orderRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c ResolveIssueCommand) Validate() error {
	return c.guard.Validate(ErrResolveIssueCommandIsNotConstructed)
}
