package repository

import (
	"context"
	"errors"
	"testing"

	"lawbandhu-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lawyerCols = []string{
	"id", "name", "specialization", "rating", "experience_years", "location",
	"languages", "consultation_fee", "image_url", "bio", "education", "bar_council_id",
	"success_rate", "cases_handled",
}

func TestLawyerRepository_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(lawyerCols).AddRow(
					int64(1), "Adv. Priya Sharma", "Property Law", 4.8, 12, "Delhi",
					[]string{"English", "Hindi"}, 2000, "", strPtr("Property specialist"),
					[]string{"LLB, Delhi University"}, strPtr("D/1234/2012"), intPtr(92), intPtr(340),
				)
				mock.ExpectQuery(`SELECT id, name, specialization`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, specialization`).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			tt.setup(mock)
			repo := NewLawyerRepository(mock)

			got, err := repo.GetByID(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Adv. Priya Sharma", got.Name)
				assert.Equal(t, []string{"English", "Hindi"}, got.Languages)
				require.NotNil(t, got.SuccessRate)
				assert.Equal(t, 92, *got.SuccessRate)
				assert.False(t, got.IsStarred)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLawyerRepository_List(t *testing.T) {
	mock := newMockDB(t)
	rows := pgxmock.NewRows(lawyerCols).
		AddRow(int64(1), "A", "Property Law", 4.8, 12, "Delhi", []string{"Hindi"}, 2000, "", (*string)(nil), []string{}, (*string)(nil), (*int)(nil), (*int)(nil)).
		AddRow(int64(2), "B", "Cyber Law", 4.1, 4, "Pune", []string{"Marathi"}, 900, "", (*string)(nil), []string{}, (*string)(nil), (*int)(nil), (*int)(nil))
	mock.ExpectQuery(`FROM lawyers ORDER BY id`).WillReturnRows(rows)

	got, err := NewLawyerRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Cyber Law", got[1].Specialization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLawyerRepository_ListError(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`FROM lawyers`).WillReturnError(errors.New("connection reset"))

	_, err := NewLawyerRepository(mock).List(context.Background())
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLawyerRepository_Create(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO lawyers`).
		WithArgs(
			"Adv. Kiran Rao", "Cyber Law", 4.4, 6, "Hyderabad", []string{"Telugu"}, 1200, "",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	l := &models.Lawyer{
		Name: "Adv. Kiran Rao", Specialization: "Cyber Law", Rating: 4.4, ExperienceYears: 6,
		Location: "Hyderabad", Languages: []string{"Telugu"}, ConsultationFee: 1200,
	}
	require.NoError(t, NewLawyerRepository(mock).Create(context.Background(), l))
	assert.Equal(t, int64(9), l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarRepository(t *testing.T) {
	viewer := uuid.New()

	t.Run("starred ids", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery(`SELECT lawyer_id FROM lawyer_stars`).
			WithArgs(viewer).
			WillReturnRows(pgxmock.NewRows([]string{"lawyer_id"}).AddRow(int64(2)).AddRow(int64(5)))

		got, err := NewStarRepository(mock).StarredIDs(context.Background(), viewer)
		require.NoError(t, err)
		assert.Equal(t, map[int64]bool{2: true, 5: true}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("star inserts", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO lawyer_stars`).
			WithArgs(viewer, int64(3)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, NewStarRepository(mock).SetStar(context.Background(), viewer, 3, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unstar deletes", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM lawyer_stars`).
			WithArgs(viewer, int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		require.NoError(t, NewStarRepository(mock).SetStar(context.Background(), viewer, 3, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
