package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emocionario/usuarios-api/internal/domain"
	"github.com/emocionario/usuarios-api/internal/domain/entity"
	"github.com/emocionario/usuarios-api/internal/domain/valueobject"
)

// setupTestDB prepares a private in-memory database per test so tests
// cannot see each other's rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&userModel{}), "failed to migrate usuarios table")
	return db
}

func newUser(t *testing.T, nome, sobrenome, email string, birth *time.Time) *entity.User {
	t.Helper()
	n, err := valueobject.NewName(nome)
	require.NoError(t, err)
	s, err := valueobject.NewSurname(sobrenome)
	require.NoError(t, err)
	e, err := valueobject.NewEmail(email)
	require.NoError(t, err)
	var bd *valueobject.BirthDate
	if birth != nil {
		v, err := valueobject.NewBirthDate(*birth)
		require.NoError(t, err)
		bd = &v
	}
	return entity.NewUser(n, s, e, bd)
}

func TestUserRepository_AddAndGetByID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	birth := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
	u := newUser(t, "Maria", "Silva", "Maria@Test.com", &birth)
	require.NoError(t, repo.Add(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Maria", got.Name.Value())
	assert.Equal(t, "Silva", got.Surname.Value())
	assert.Equal(t, "maria@test.com", got.Email.Value())
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "1990-03-15", got.BirthDate.String())
	assert.Nil(t, got.UpdatedAt, "atualizadoEm must be absent before the first update")
}

func TestUserRepository_AddDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newUser(t, "Maria", "Silva", "maria@test.com", nil)))

	err := repo.Add(ctx, newUser(t, "Mariana", "Souza", "maria@test.com", nil))
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict, "unique index violation must surface as a conflict")
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	email, err := valueobject.NewEmail("maria@test.com")
	require.NoError(t, err)

	exists, err := repo.ExistsByEmail(ctx, email)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, newUser(t, "Maria", "Silva", "maria@test.com", nil)))

	exists, err = repo.ExistsByEmail(ctx, email)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser(t, "Maria", "Silva", "maria@test.com", nil)
	require.NoError(t, repo.Add(ctx, u))

	email, err := valueobject.NewEmail("maria@test.com")
	require.NoError(t, err)
	got, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	ghost, err := valueobject.NewEmail("ghost@test.com")
	require.NoError(t, err)
	got, err = repo.GetByEmail(ctx, ghost)
	assert.NoError(t, err)
	assert.Nil(t, got, "absence is (nil, nil)")
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser(t, "Maria", "Silva", "maria@test.com", nil)
	require.NoError(t, repo.Add(ctx, u))

	name, err := valueobject.NewName("Mariana")
	require.NoError(t, err)
	birth, err := valueobject.NewBirthDate(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	u.Update(name, u.Surname, &birth)
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Mariana", got.Name.Value())
	assert.Equal(t, "Silva", got.Surname.Value())
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "1990-03-15", got.BirthDate.String())
	require.NotNil(t, got.UpdatedAt)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser(t, "Maria", "Silva", "maria@test.com", nil)
	require.NoError(t, repo.Add(ctx, u))

	deleted, err := repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is an idempotent miss.
	deleted, err = repo.Delete(ctx, u.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
