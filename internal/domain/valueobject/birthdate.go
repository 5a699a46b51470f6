package valueobject

import (
	"time"

	"github.com/emocionario/usuarios-api/internal/domain"
)

// BirthDate is a validated date of birth. Only the date component is kept;
// the stored value is midnight UTC of the given day.
type BirthDate struct {
	value time.Time
}

// NewBirthDate validates a raw birth date against the current UTC date.
// A date equal to today is accepted; anything strictly in the future is not.
func NewBirthDate(raw time.Time) (BirthDate, error) {
	day := truncateToDay(raw)
	if day.After(truncateToDay(time.Now().UTC())) {
		return BirthDate{}, domain.NewInvalidArgument("dataNascimento", "A data de nascimento não pode ser em uma data futura.")
	}
	return BirthDate{value: day}, nil
}

// Value returns the date as midnight UTC.
func (d BirthDate) Value() time.Time { return d.value }

// String formats the date as ISO 8601 (yyyy-MM-dd).
func (d BirthDate) String() string { return d.value.Format("2006-01-02") }

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
