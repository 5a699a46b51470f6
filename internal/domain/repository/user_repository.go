// Package repository defines the persistence contracts of the user domain.
package repository

import (
	"context"

	"github.com/emocionario/usuarios-api/internal/domain/entity"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// UserRepository abstracts user persistence. Absence is never an error:
// lookups return (nil, nil) and Delete returns (false, nil) when no record
// matches. Implementations must translate their store's unique-email
// violation into domain.ConflictError so a lost check-then-insert race still
// surfaces as a conflict.
type UserRepository interface {
	// ExistsByEmail reports whether a user with the given normalized email
	// already exists.
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)

	// Add persists a newly created user.
	Add(ctx context.Context, user *entity.User) error

	// GetByID returns the user with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail returns the user with the given normalized email, or nil
	// when absent.
	GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)

	// Update persists the current state of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given id, reporting whether a record
	// existed.
	Delete(ctx context.Context, id string) (bool, error)
}
