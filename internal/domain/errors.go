// Package domain defines the error types shared by the user domain and the
// layers that orchestrate it.
package domain

import "fmt"

// InvalidArgumentError reports a field value that violates a domain rule.
// Value-object constructors are the usual source; the HTTP layer maps it
// to a 400 response.
type InvalidArgumentError struct {
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string { return e.Message }

// NewInvalidArgument builds an InvalidArgumentError for the given parameter.
func NewInvalidArgument(param, message string) error {
	return &InvalidArgumentError{Param: param, Message: message}
}

// ConflictError reports a uniqueness violation. The HTTP layer maps it to a
// 409 response.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewEmailConflict builds the ConflictError returned when an email address
// is already taken, either by the service-level existence check or by the
// storage-level unique index catching a concurrent insert.
func NewEmailConflict(email string) error {
	return &ConflictError{Message: fmt.Sprintf("Já existe um usuário cadastrado com o email '%s'.", email)}
}
