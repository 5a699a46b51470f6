// Package entity holds the aggregate roots of the user domain.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// User is the aggregate root for the user domain. Identity and email are
// fixed at creation; the only mutation path is Update, which always stamps
// UpdatedAt.
type User struct {
	ID        string
	Name      valueobject.Name
	Surname   valueobject.Surname
	Email     valueobject.Email
	BirthDate *valueobject.BirthDate
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewUser creates a user with a fresh id and CreatedAt set to the current
// UTC time. UpdatedAt stays unset until the first Update. Email uniqueness
// is not checked here; that is the application service's job against the
// repository.
func NewUser(name valueobject.Name, surname valueobject.Surname, email valueobject.Email, birthDate *valueobject.BirthDate) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Surname:   surname,
		Email:     email,
		BirthDate: birthDate,
		CreatedAt: time.Now().UTC(),
	}
}

// Update replaces name, surname and birth date in place and stamps
// UpdatedAt. There is no path that accepts a new email or id.
func (u *User) Update(name valueobject.Name, surname valueobject.Surname, birthDate *valueobject.BirthDate) {
	now := time.Now().UTC()
	u.Name = name
	u.Surname = surname
	u.BirthDate = birthDate
	u.UpdatedAt = &now
}
