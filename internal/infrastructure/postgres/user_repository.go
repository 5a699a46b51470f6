package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emocionario/usuarios-api/internal/domain"
	"github.com/emocionario/usuarios-api/internal/domain/entity"
	"github.com/emocionario/usuarios-api/internal/domain/repository"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// uniqueViolation is the SQLSTATE Postgres reports when the unique index on
// usuarios.email rejects an insert.
const uniqueViolation = "23505"

// UserRepository is the Postgres variant of repository.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)
	`, email.Value()).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Add(ctx context.Context, user *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO usuarios (id, nome, sobrenome, email, data_nascimento, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name.Value(), user.Surname.Value(), user.Email.Value(),
		birthDateValue(user), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.NewEmailConflict(user.Email.Value())
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email.Value())
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE usuarios
		SET nome = $1, sobrenome = $2, data_nascimento = $3, atualizado_em = $4
		WHERE id = $5
	`, user.Name.Value(), user.Surname.Value(), birthDateValue(user), user.UpdatedAt, user.ID)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nome, sobrenome, email, data_nascimento, criado_em, atualizado_em
		FROM usuarios `+where, arg)

	var (
		id, nome, sobrenome, email string
		dataNascimento             *time.Time
		criadoEm                   time.Time
		atualizadoEm               *time.Time
	)
	if err := row.Scan(&id, &nome, &sobrenome, &email, &dataNascimento, &criadoEm, &atualizadoEm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rehydrate(id, nome, sobrenome, email, dataNascimento, criadoEm, atualizadoEm)
}

func birthDateValue(u *entity.User) *time.Time {
	if u.BirthDate == nil {
		return nil
	}
	v := u.BirthDate.Value()
	return &v
}

func rehydrate(id, nome, sobrenome, rawEmail string, dataNascimento *time.Time, criadoEm time.Time, atualizadoEm *time.Time) (*entity.User, error) {
	name, err := valueobject.NewName(nome)
	if err != nil {
		return nil, err
	}
	surname, err := valueobject.NewSurname(sobrenome)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	var birthDate *valueobject.BirthDate
	if dataNascimento != nil {
		bd, err := valueobject.NewBirthDate(*dataNascimento)
		if err != nil {
			return nil, err
		}
		birthDate = &bd
	}
	return &entity.User{
		ID:        id,
		Name:      name,
		Surname:   surname,
		Email:     email,
		BirthDate: birthDate,
		CreatedAt: criadoEm,
		UpdatedAt: atualizadoEm,
	}, nil
}
