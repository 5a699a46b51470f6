package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Nome  string `json:"nome" binding:"required,min=3,max=50,lettersonly"`
	Email string `json:"email" binding:"required,email"`
}

func TestToDetails(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("nil error yields no details", func(t *testing.T) {
		assert.Nil(t, ToDetails(nil))
	})

	t.Run("field errors are keyed by json tag", func(t *testing.T) {
		err := v.Struct(sampleRequest{Nome: "Jo", Email: "not-an-email"})
		require.Error(t, err)

		details := ToDetails(err)
		assert.Equal(t, "deve ter no mínimo 3 caracteres.", details["nome"])
		assert.Equal(t, "deve ser um endereço válido.", details["email"])
	})

	t.Run("lettersonly accepts accented names", func(t *testing.T) {
		assert.NoError(t, v.Struct(sampleRequest{Nome: "João César", Email: "joao@test.com"}))

		err := v.Struct(sampleRequest{Nome: "Joa0 Silva", Email: "joao@test.com"})
		require.Error(t, err)
		assert.Equal(t, "deve conter apenas letras.", ToDetails(err)["nome"])
	})

	t.Run("unknown errors collapse into payload", func(t *testing.T) {
		details := ToDetails(assert.AnError)
		assert.Equal(t, "O corpo da requisição é inválido.", details["payload"])
	})
}
