package application

import (
	"fmt"
	"time"

	"github.com/emocionario/usuarios-api/internal/domain/entity"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// Date is a date-only value serialized as "yyyy-MM-dd" on the wire.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("data deve estar no formato %s", dateLayout)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("data deve estar no formato %s", dateLayout)
	}
	d.Time = t
	return nil
}

// CreateUserInput carries the fields for creating a user. DataNascimento is
// optional.
type CreateUserInput struct {
	Nome           string
	Sobrenome      string
	Email          string
	DataNascimento *Date
}

// UpdateUserInput carries a partial update. Blank or absent fields mean
// "keep the current value"; there is no way to clear a field once set.
type UpdateUserInput struct {
	ID             string
	Nome           string
	Sobrenome      string
	DataNascimento *Date
}

// UserResponse is the outward representation of a user.
type UserResponse struct {
	ID             string     `json:"id"`
	Nome           string     `json:"nome"`
	Sobrenome      string     `json:"sobrenome"`
	Email          string     `json:"email"`
	DataNascimento *Date      `json:"dataNascimento,omitempty"`
	CriadoEm       time.Time  `json:"criadoEm"`
	AtualizadoEm   *time.Time `json:"atualizadoEm,omitempty"`
}

func toResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Nome:         u.Name.Value(),
		Sobrenome:    u.Surname.Value(),
		Email:        u.Email.Value(),
		CriadoEm:     u.CreatedAt,
		AtualizadoEm: u.UpdatedAt,
	}
	if u.BirthDate != nil {
		resp.DataNascimento = &Date{Time: u.BirthDate.Value()}
	}
	return resp
}

func toBirthDate(d *Date) (*valueobject.BirthDate, error) {
	if d == nil {
		return nil, nil
	}
	bd, err := valueobject.NewBirthDate(d.Time)
	if err != nil {
		return nil, err
	}
	return &bd, nil
}
