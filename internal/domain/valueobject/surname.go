package valueobject

import (
	"fmt"
	"strings"

	"github.com/emocionario/usuarios-api/internal/domain"
)

// Surname is a user's validated last name, under the same length rules as
// Name.
type Surname struct {
	value string
}

// NewSurname validates and normalizes a raw last name.
func NewSurname(raw string) (Surname, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Surname{}, domain.NewInvalidArgument("sobrenome", "O sobrenome não pode estar vazio.")
	}
	if len([]rune(trimmed)) < nameMinLen {
		return Surname{}, domain.NewInvalidArgument("sobrenome", fmt.Sprintf("O sobrenome deve ter no mínimo %d caracteres.", nameMinLen))
	}
	if len([]rune(trimmed)) > nameMaxLen {
		return Surname{}, domain.NewInvalidArgument("sobrenome", fmt.Sprintf("O sobrenome deve ter no máximo %d caracteres.", nameMaxLen))
	}
	return Surname{value: trimmed}, nil
}

// Value returns the normalized surname.
func (s Surname) Value() string { return s.value }

func (s Surname) String() string { return s.value }
