package valueobject

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emocionario/usuarios-api/internal/domain"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid name", input: "Maria", want: "Maria"},
		{name: "trims surrounding whitespace", input: "  Maria  ", want: "Maria"},
		{name: "minimum length", input: "Ana", want: "Ana"},
		{name: "maximum length", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too short", input: "Jo", wantErr: true},
		{name: "too short after trimming", input: "  Jo  ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 51), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalidArg *domain.InvalidArgumentError
				assert.ErrorAs(t, err, &invalidArg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewSurname(t *testing.T) {
	t.Run("valid surname is trimmed", func(t *testing.T) {
		got, err := NewSurname("  Silva ")
		require.NoError(t, err)
		assert.Equal(t, "Silva", got.Value())
	})

	t.Run("length bounds", func(t *testing.T) {
		_, err := NewSurname("Li")
		assert.Error(t, err)
		_, err = NewSurname(strings.Repeat("s", 51))
		assert.Error(t, err)
	})
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid email", input: "maria@test.com", want: "maria@test.com"},
		{name: "normalizes to lowercase", input: "Test@Example.com", want: "test@example.com"},
		{name: "trims before validating", input: "  maria@test.com  ", want: "maria@test.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "missing at sign", input: "maria.test.com", wantErr: true},
		{name: "missing dot", input: "maria@testcom", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmail(tt.input)
			if tt.wantErr {
				var invalidArg *domain.InvalidArgumentError
				assert.ErrorAs(t, err, &invalidArg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewBirthDate(t *testing.T) {
	t.Run("past date succeeds", func(t *testing.T) {
		got, err := NewBirthDate(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "1990-03-15", got.String())
	})

	t.Run("today succeeds", func(t *testing.T) {
		_, err := NewBirthDate(time.Now().UTC())
		assert.NoError(t, err)
	})

	t.Run("tomorrow fails", func(t *testing.T) {
		_, err := NewBirthDate(time.Now().UTC().AddDate(0, 0, 1))
		var invalidArg *domain.InvalidArgumentError
		assert.ErrorAs(t, err, &invalidArg)
	})

	t.Run("time component is dropped", func(t *testing.T) {
		got, err := NewBirthDate(time.Date(2000, time.January, 2, 23, 59, 59, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC), got.Value())
	})
}
