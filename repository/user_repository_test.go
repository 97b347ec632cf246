package repository

import (
	"context"
	"testing"
	"time"

	"lawbandhu-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "phone", "name", "role", "photo_url", "created_at", "updated_at"}

func TestUserRepository_Upsert(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	t.Run("by email", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery(`ON CONFLICT \(email\)`).
			WithArgs("asha@example.com").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(id, strPtr("asha@example.com"), (*string)(nil), "asha", models.RoleUnset, (*string)(nil), now, now))

		u, err := NewUserRepository(mock).UpsertByEmail(context.Background(), "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "asha", u.Name)
		assert.Nil(t, u.Phone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by phone", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery(`ON CONFLICT \(phone\)`).
			WithArgs("+919800000000").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(id, (*string)(nil), strPtr("+919800000000"), "+919800000000", models.RoleClient, (*string)(nil), now, now))

		u, err := NewUserRepository(mock).UpsertByPhone(context.Background(), "+919800000000")
		require.NoError(t, err)
		assert.Equal(t, models.RoleClient, u.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectQuery(`FROM users WHERE id`).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetRole(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`UPDATE users SET role`).
		WithArgs(id, models.RoleLawyer).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(id, strPtr("a@b.in"), (*string)(nil), "a", models.RoleLawyer, (*string)(nil), now, now))

	u, err := NewUserRepository(mock).SetRole(context.Background(), id, models.RoleLawyer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLawyer, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
