// Package valueobject contains the self-validating wrappers used by the user
// aggregate. Construction is the only way to obtain an instance, so any live
// value is guaranteed to satisfy its invariant.
package valueobject

import (
	"fmt"
	"strings"

	"github.com/emocionario/usuarios-api/internal/domain"
)

const (
	nameMinLen = 3
	nameMaxLen = 50
)

// Name is a user's validated first name. The stored value is trimmed and
// always within [3,50] characters.
type Name struct {
	value string
}

// NewName validates and normalizes a raw first name.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, domain.NewInvalidArgument("nome", "O primeiro nome não pode estar vazio.")
	}
	if len([]rune(trimmed)) < nameMinLen {
		return Name{}, domain.NewInvalidArgument("nome", fmt.Sprintf("O primeiro nome deve ter no mínimo %d caracteres.", nameMinLen))
	}
	if len([]rune(trimmed)) > nameMaxLen {
		return Name{}, domain.NewInvalidArgument("nome", fmt.Sprintf("O primeiro nome deve ter no máximo %d caracteres.", nameMaxLen))
	}
	return Name{value: trimmed}, nil
}

// Value returns the normalized name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }
