package actor

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the user on whose behalf a transition or query runs.
// User records live outside this service; only the id and role are needed here.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor validates both parts of the acting user.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// MustNewActor is NewActor for fixtures and wiring code that cannot fail.
func MustNewActor(id kernel.UUID, role Role) Actor {
	a, err := NewActor(id, role)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor has the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Validate returns ErrActorIsNotConstructed for a zero-value Actor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
