package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the resolved role of the caller, supplied by the identity collaborator.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

// ParseRole accepts admin, vendor and customer.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is who performs a mutating operation. Every command carries one and
// the core checks it against the per-operation rules.
type Actor struct {
	role Role
	id   UUID
}

func NewActor(role Role, id UUID) (Actor, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

// MustActor is meant for tests.
func MustActor(role Role, id UUID) Actor {
	a, err := NewActor(role, id)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Actor) Role() Role { return a.role }
func (a Actor) ID() UUID { return a.id }

func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }

// Is reports whether the actor has role and identity id.
func (a Actor) Is(role Role, id UUID) bool {
	return a.role == role && a.id.IsEqual(id)
}

func (a Actor) Validate() error {
	if a.role == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return a.id.Validate()
}

// Forbid builds the error returned when the actor may not perform action.
func (a Actor) Forbid(action string) error {
	return errs.NewActionIsForbiddenError(action, string(a.role))
}
