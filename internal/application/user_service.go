// Package application orchestrates the user domain: DTO/domain mapping, the
// email uniqueness check and the partial-update merge.
package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/emocionario/usuarios-api/internal/domain"
	"github.com/emocionario/usuarios-api/internal/domain/entity"
	repo "github.com/emocionario/usuarios-api/internal/domain/repository"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// UserService implements the application-level user operations on top of a
// UserRepository.
type UserService struct {
	repo   repo.UserRepository
	logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{repo: r, logger: logger}
}

// Create validates the input, rejects duplicate emails and persists a new
// user. The existence check runs before the insert; a concurrent create
// that slips past it is caught by the store's unique index, which the
// repository reports as the same conflict error.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*UserResponse, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if exists {
		return nil, domain.NewEmailConflict(email.Value())
	}

	name, err := valueobject.NewName(in.Nome)
	if err != nil {
		return nil, err
	}
	surname, err := valueobject.NewSurname(in.Sobrenome)
	if err != nil {
		return nil, err
	}
	birthDate, err := toBirthDate(in.DataNascimento)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(name, surname, email, birthDate)
	if err := s.repo.Add(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "email": email.Value()}).Info("usuário criado")
	return toResponse(user), nil
}

// GetByID returns the user with the given id, or nil when absent.
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	return toResponse(user), nil
}

// GetByEmail normalizes and validates the raw email, then looks the user
// up. Malformed input is an invalid-argument error, not a miss.
func (s *UserService) GetByEmail(ctx context.Context, rawEmail string) (*UserResponse, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return toResponse(user), nil
}

// Update applies a partial update: every blank or absent field keeps the
// aggregate's current value. Returns false when no user has the given id.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (bool, error) {
	user, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	name := user.Name
	if strings.TrimSpace(in.Nome) != "" {
		if name, err = valueobject.NewName(in.Nome); err != nil {
			return false, err
		}
	}

	surname := user.Surname
	if strings.TrimSpace(in.Sobrenome) != "" {
		if surname, err = valueobject.NewSurname(in.Sobrenome); err != nil {
			return false, err
		}
	}

	birthDate := user.BirthDate
	if in.DataNascimento != nil {
		if birthDate, err = toBirthDate(in.DataNascimento); err != nil {
			return false, err
		}
	}

	user.Update(name, surname, birthDate)
	if err := s.repo.Update(ctx, user); err != nil {
		return false, err
	}

	s.logger.WithField("user_id", user.ID).Info("usuário atualizado")
	return true, nil
}

// Delete removes the user with the given id, reporting whether a record
// existed.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.WithField("user_id", id).Info("usuário excluído")
	}
	return deleted, nil
}
