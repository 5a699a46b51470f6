// Package memory implements the user repository on an in-memory SQLite
// database. The dataset lives for the lifetime of the process only; this is
// explicitly not a durability mechanism.
package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emocionario/usuarios-api/internal/domain"
	"github.com/emocionario/usuarios-api/internal/domain/entity"
	"github.com/emocionario/usuarios-api/internal/domain/repository"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// userModel is the storage shape of a user. The unique index on email is
// the second line of defense behind the service's check-then-insert.
type userModel struct {
	ID             string `gorm:"primaryKey;size:36"`
	Nome           string `gorm:"size:100;not null"`
	Sobrenome      string `gorm:"size:100;not null"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	DataNascimento *time.Time
	CriadoEm       time.Time `gorm:"not null"`
	AtualizadoEm   *time.Time
}

func (userModel) TableName() string { return "usuarios" }

// Open creates the process-lifetime in-memory database and migrates the
// usuarios table. The shared cache keeps every connection of the pool on
// the same dataset.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the usuarios table on the given connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{})
}

// UserRepository is the in-memory variant of repository.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).Where("email = ?", email.Value()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Add(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(toModel(user)).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewEmailConflict(user.Email.Value())
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toEntity(&m)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email.Value()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toEntity(&m)
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"nome":            user.Name.Value(),
		"sobrenome":       user.Surname.Value(),
		"data_nascimento": birthDateValue(user),
		"atualizado_em":   user.UpdatedAt,
	})
	return res.Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toModel(u *entity.User) *userModel {
	return &userModel{
		ID:             u.ID,
		Nome:           u.Name.Value(),
		Sobrenome:      u.Surname.Value(),
		Email:          u.Email.Value(),
		DataNascimento: birthDateValue(u),
		CriadoEm:       u.CreatedAt,
		AtualizadoEm:   u.UpdatedAt,
	}
}

func birthDateValue(u *entity.User) *time.Time {
	if u.BirthDate == nil {
		return nil
	}
	v := u.BirthDate.Value()
	return &v
}

// toEntity rehydrates an aggregate through the value-object constructors,
// so a row can only come back in a valid state.
func toEntity(m *userModel) (*entity.User, error) {
	name, err := valueobject.NewName(m.Nome)
	if err != nil {
		return nil, err
	}
	surname, err := valueobject.NewSurname(m.Sobrenome)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(m.Email)
	if err != nil {
		return nil, err
	}
	var birthDate *valueobject.BirthDate
	if m.DataNascimento != nil {
		bd, err := valueobject.NewBirthDate(*m.DataNascimento)
		if err != nil {
			return nil, err
		}
		birthDate = &bd
	}
	return &entity.User{
		ID:        m.ID,
		Name:      name,
		Surname:   surname,
		Email:     email,
		BirthDate: birthDate,
		CreatedAt: m.CriadoEm,
		UpdatedAt: m.AtualizadoEm,
	}, nil
}
