package user

import (
	"context"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/testutil"
	"testing"
	"time"
)

var userColumns = []string{"id", "email", "password_hash", "display_name", "created_at", "updated_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	u := &entities.User{Email: "a@b.com", PasswordHash: "hash", DisplayName: "Ann"}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, id, u.ID)
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.CreateUser(context.Background(), &entities.User{Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@b.com", "hash", "Ann", now, now))

	u, err := repo.GetUserByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "Ann", u.DisplayName)
}

func TestUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUserByEmail(context.Background(), "missing@b.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetUserByID_InvalidUUID(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	repo := NewUserRepository(db)

	_, err := repo.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetUserByID_DBError(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetUserByID(context.Background(), uuid.NewString())
	assert.ErrorContains(t, err, "get user by id")
}

func TestUserRepository_CheckEmailExists(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.CheckEmailExists(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_GetUsers(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at desc,id desc`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.NewString(), "b@b.com", "h", "Bea", now, now).
			AddRow(uuid.NewString(), "a@b.com", "h", "Ann", now.Add(-time.Hour), now))

	users, err := repo.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b@b.com", users[0].Email)
}
