package valueobject

import (
	"strings"

	"github.com/emocionario/usuarios-api/internal/domain"
)

// Email is a validated, normalized email address. The stored value is
// trimmed and lowercased, so two addresses that differ only in case compare
// equal everywhere, including the uniqueness check.
type Email struct {
	value string
}

// NewEmail validates and normalizes a raw email address. The shape check is
// deliberately loose (must contain "@" and "."); strict format rules live in
// the transport validation layer.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, domain.NewInvalidArgument("email", "O email não pode estar vazio.")
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !strings.Contains(normalized, "@") || !strings.Contains(normalized, ".") {
		return Email{}, domain.NewInvalidArgument("email", "O email fornecido não é válido.")
	}
	return Email{value: normalized}, nil
}

// Value returns the normalized address.
func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }
