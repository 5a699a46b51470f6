package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

func mustName(t *testing.T, v string) valueobject.Name {
	t.Helper()
	n, err := valueobject.NewName(v)
	require.NoError(t, err)
	return n
}

func mustSurname(t *testing.T, v string) valueobject.Surname {
	t.Helper()
	s, err := valueobject.NewSurname(v)
	require.NoError(t, err)
	return s
}

func mustEmail(t *testing.T, v string) valueobject.Email {
	t.Helper()
	e, err := valueobject.NewEmail(v)
	require.NoError(t, err)
	return e
}

func TestNewUser(t *testing.T) {
	before := time.Now().UTC()
	u := NewUser(mustName(t, "Maria"), mustSurname(t, "Silva"), mustEmail(t, "maria@test.com"), nil)

	_, err := uuid.Parse(u.ID)
	assert.NoError(t, err, "id must be a generated uuid")
	assert.False(t, u.CreatedAt.Before(before), "CreatedAt must be stamped at creation")
	assert.Nil(t, u.UpdatedAt, "UpdatedAt must be unset until the first update")
	assert.Nil(t, u.BirthDate)
}

func TestUser_Update(t *testing.T) {
	u := NewUser(mustName(t, "Maria"), mustSurname(t, "Silva"), mustEmail(t, "maria@test.com"), nil)
	originalID := u.ID
	originalEmail := u.Email

	bd, err := valueobject.NewBirthDate(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	u.Update(mustName(t, "Mariana"), mustSurname(t, "Souza"), &bd)

	assert.Equal(t, "Mariana", u.Name.Value())
	assert.Equal(t, "Souza", u.Surname.Value())
	require.NotNil(t, u.BirthDate)
	assert.Equal(t, "1990-03-15", u.BirthDate.String())

	require.NotNil(t, u.UpdatedAt, "Update must stamp UpdatedAt")
	assert.False(t, u.UpdatedAt.Before(u.CreatedAt), "UpdatedAt must not precede CreatedAt")

	assert.Equal(t, originalID, u.ID, "id is immutable")
	assert.Equal(t, originalEmail, u.Email, "email has no update path")
}
