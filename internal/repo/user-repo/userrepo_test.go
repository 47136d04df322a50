package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const userColumnsQuery = `
        SELECT id, name, email, password_hash, photo, role, coins, created_at
        FROM users
        WHERE email = $1
    `

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "jane@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "photo", "role", "coins", "created_at"}).
					AddRow(1, "Jane", "jane@example.com", "hashed_password", "photo.png", "worker", 120, now)
				mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
					WithArgs("jane@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Name:         "Jane",
				Email:        "jane@example.com",
				PasswordHash: "hashed_password",
				Photo:        "photo.png",
				Role:         "worker",
				Coins:        120,
				CreatedAt:    now,
			},
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "jane@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
					WithArgs("jane@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	insertQuery := `
			INSERT INTO users (name, email, password_hash, photo, role, coins)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Name:         "Jane",
				Email:        "jane@example.com",
				PasswordHash: "hashed_password",
				Role:         "worker",
				Coins:        10,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("Jane", "jane@example.com", "hashed_password", "", "worker", 10).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				Name:         "Jane",
				Email:        "jane@example.com",
				PasswordHash: "hashed_password",
				Role:         "worker",
				Coins:        10,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("Jane", "jane@example.com", "hashed_password", "", "worker", 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_AdjustCoins(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	adjustQuery := `
			UPDATE users
			SET coins = coins + $1
			WHERE email = $2 AND coins + $1 >= 0
			RETURNING coins
		`

	tests := []struct {
		name        string
		delta       int
		mockSetup   func()
		expectErr   error
		expectCoins int
	}{
		{
			name:  "Positive delta applied",
			delta: 25,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(adjustQuery)).
					WithArgs(25, "jane@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(145))
			},
			expectCoins: 145,
		},
		{
			name:  "Guard rejects an overdraft",
			delta: -500,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(adjustQuery)).
					WithArgs(-500, "jane@example.com").
					WillReturnError(pgx.ErrNoRows)
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "photo", "role", "coins", "created_at"}).
					AddRow(1, "Jane", "jane@example.com", "hashed_password", "", "worker", 120, now)
				mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
					WithArgs("jane@example.com").
					WillReturnRows(rows)
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name:  "Unknown account",
			delta: -10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(adjustQuery)).
					WithArgs(-10, "jane@example.com").
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(userColumnsQuery)).
					WithArgs("jane@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrUserNotFound,
		},
		{
			name:  "Database error",
			delta: 25,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(adjustQuery)).
					WithArgs(25, "jane@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			coins, err := repo.AdjustCoins(context.Background(), "jane@example.com", tt.delta)
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectCoins, coins)
			}
		})
	}
}

func TestRepository_UpdateRole(t *testing.T) {
	repo, mock := NewMock(t)

	updateQuery := `
			UPDATE users
			SET role = $1
			WHERE id = $2
		`

	tests := []struct {
		name         string
		mockSetup    func()
		expectErr    bool
		rowsAffected int64
	}{
		{
			name: "Role updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("admin", 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			rowsAffected: 1,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("admin", 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			rowsAffected: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("admin", 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.UpdateRole(context.Background(), 5, "admin")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.rowsAffected, affected)
			}
		})
	}
}

func TestRepository_TopWorkers(t *testing.T) {
	repo, mock := NewMock(t)

	topQuery := `
        SELECT name, photo, coins
        FROM users
        WHERE role = 'worker'
        ORDER BY coins DESC
        LIMIT $1
    `

	t.Run("Returns the leaderboard", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"name", "photo", "coins"}).
			AddRow("Jane", "jane.png", 900).
			AddRow("Sam", "sam.png", 700)
		mock.ExpectQuery(regexp.QuoteMeta(topQuery)).
			WithArgs(6).
			WillReturnRows(rows)

		workers, err := repo.TopWorkers(context.Background(), 6)
		assert.NoError(t, err)
		assert.Len(t, workers, 2)
		assert.Equal(t, "Jane", workers[0].Name)
		assert.Equal(t, 900, workers[0].Coins)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(topQuery)).
			WithArgs(6).
			WillReturnError(errors.New("database error"))

		workers, err := repo.TopWorkers(context.Background(), 6)
		assert.Error(t, err)
		assert.Nil(t, workers)
	})
}

func TestRepository_CountByRole(t *testing.T) {
	repo, mock := NewMock(t)

	countQuery := `
        SELECT role, COUNT(*)
        FROM users
        GROUP BY role
    `

	rows := pgxmock.NewRows([]string{"role", "count"}).
		AddRow("buyer", 10).
		AddRow("worker", 30)
	mock.ExpectQuery(regexp.QuoteMeta(countQuery)).WillReturnRows(rows)

	counts, err := repo.CountByRole(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"buyer": 10, "worker": 30}, counts)
}

func TestRepository_FindEmailsByRole(t *testing.T) {
	repo, mock := NewMock(t)

	emailsQuery := `
        SELECT email
        FROM users
        WHERE role = $1
    `

	rows := pgxmock.NewRows([]string{"email"}).
		AddRow("admin1@example.com").
		AddRow("admin2@example.com")
	mock.ExpectQuery(regexp.QuoteMeta(emailsQuery)).
		WithArgs("admin").
		WillReturnRows(rows)

	emails, err := repo.FindEmailsByRole(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, []string{"admin1@example.com", "admin2@example.com"}, emails)
}
