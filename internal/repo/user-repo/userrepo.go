package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, photo, role, coins, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Photo, &user.Role, &user.Coins, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, photo, role, coins, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Photo, &user.Role, &user.Coins, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, photo, role, coins)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Photo, user.Role, user.Coins).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AdjustCoins applies a single atomic increment to the user's balance. A
// negative delta that would take the balance below zero changes nothing and
// returns ErrInsufficientBalance.
func (r *Repository) AdjustCoins(ctx context.Context, email string, delta int) (int, error) {
	query := `
		UPDATE users
		SET coins = coins + $1
		WHERE email = $2 AND coins + $1 >= 0
		RETURNING coins
	`
	var coins int
	err := r.db.QueryRow(ctx, query, delta, email).Scan(&coins)
	if err == nil {
		return coins, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't adjust coins", zap.Error(err))
		return 0, err
	}

	user, ferr := r.FindByEmail(ctx, email)
	if ferr != nil {
		return 0, ferr
	}
	if user == nil {
		return 0, fmt.Errorf("account %s: %w", email, domain.ErrUserNotFound)
	}
	return 0, fmt.Errorf("account %s has %d coins, need %d: %w", email, user.Coins, -delta, domain.ErrInsufficientBalance)
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, photo, role, coins, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Photo, &user.Role, &user.Coins, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, role string) (int64, error) {
	query := `
		UPDATE users
		SET role = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, role, id)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountByRole(ctx context.Context) (map[string]int, error) {
	query := `
        SELECT role, COUNT(*)
        FROM users
        GROUP BY role
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count users by role", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			zap.L().Error("can't scan role count row", zap.Error(err))
			return nil, err
		}
		counts[role] = count
	}
	return counts, nil
}

func (r *Repository) FindEmailsByRole(ctx context.Context, role string) ([]string, error) {
	query := `
        SELECT email
        FROM users
        WHERE role = $1
    `
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		zap.L().Error("can't find emails by role", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			zap.L().Error("can't scan email row", zap.Error(err))
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, nil
}

func (r *Repository) SumCoins(ctx context.Context) (int, error) {
	query := `
        SELECT COALESCE(SUM(coins), 0)
        FROM users
    `
	var total int
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum coins", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) TopWorkers(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
        SELECT name, photo, coins
        FROM users
        WHERE role = 'worker'
        ORDER BY coins DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get top workers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var workers []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Name, &user.Photo, &user.Coins); err != nil {
			zap.L().Error("can't scan top worker row", zap.Error(err))
			return nil, err
		}
		workers = append(workers, user)
	}
	return workers, nil
}
