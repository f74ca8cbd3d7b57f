package order

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Issue is the dispute marker attached to an order. Category and note are
// always present together.
type Issue struct {
	category string
	note     string
}

func NewIssue(category, note string) (Issue, error) {
	category, note = strings.TrimSpace(category), strings.TrimSpace(note)

	var errList []error
	if category == "" {
		errList = append(errList, errs.NewValueIsRequiredError("issue category"))
	}
	if note == "" {
		errList = append(errList, errs.NewValueIsRequiredError("issue note"))
	}
	if err := errors.Join(errList...); err != nil {
		return Issue{}, err
	}
	return Issue{category: category, note: note}, nil
}

func (i Issue) Category() string { return i.category }
func (i Issue) Note() string     { return i.note }
