package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/db"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/idgen"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

const usersTable = "users"

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	start := time.Now()
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO users (id, username) VALUES ($1, $2) RETURNING created_at`,
		string(user.ID),
		user.Username,
	).Scan(&user.CreatedAt)
	if err := db.HandleExecError(err, "insert user", usersTable, start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	// ids that are not UUIDs cannot exist in the table
	if !idgen.IsUUID(string(id)) {
		return domain.User{}, ErrUserNotFound
	}

	start := time.Now()
	var (
		user  domain.User
		rawID string
	)
	err := r.pool.QueryRow(
		ctx,
		`SELECT id::text, username, created_at FROM users WHERE id = $1`,
		string(id),
	).Scan(&rawID, &user.Username, &user.CreatedAt)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by id", usersTable, start); err != nil {
		return domain.User{}, err
	}

	user.ID = domain.ID(rawID)
	return user, nil
}

func (r *PgRepository) List(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, `SELECT id::text, username, created_at FROM users ORDER BY seq`)
	if err := db.HandleQueryError(err, nil, "list users", usersTable, start); err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var (
			u     domain.User
			rawID string
		)
		if err := rows.Scan(&rawID, &u.Username, &u.CreatedAt); err != nil {
			return nil, db.HandleQueryError(err, nil, "scan user", usersTable, start)
		}
		u.ID = domain.ID(rawID)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, db.HandleQueryError(err, nil, "iterate users", usersTable, start)
	}

	return users, nil
}
