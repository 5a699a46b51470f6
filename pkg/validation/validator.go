// Package validation configures the global validator used by Gin's binding
// and converts binding failures into the field→message map carried by
// validation problem bodies.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// lettersOnly accepts latin letters (accented included) and whitespace.
var lettersOnly = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

// Init configures the global binding validator:
// - errors report JSON tag names instead of struct field names;
// - registers the "lettersonly" rule used by nome/sobrenome.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("lettersonly", func(fl validator.FieldLevel) bool {
		return lettersOnly.MatchString(fl.Field().String())
	})
}

// ToDetails converts a binding error into a map[field]message. Malformed
// JSON payloads collapse into a single "payload" entry.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "O corpo da requisição não é um JSON válido."}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}

	return map[string]string{"payload": "O corpo da requisição é inválido."}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório."
	case "email":
		return "deve ser um endereço válido."
	case "min":
		return "deve ter no mínimo " + fe.Param() + " caracteres."
	case "max":
		return "deve ter no máximo " + fe.Param() + " caracteres."
	case "lettersonly":
		return "deve conter apenas letras."
	case "uuid":
		return "deve ser um UUID válido."
	default:
		return "é inválido."
	}
}
