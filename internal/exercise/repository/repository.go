package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/db"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
)

type Repository interface {
	Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	// ListByUsername returns every exercise recorded under username in
	// insertion order.
	ListByUsername(ctx context.Context, username string) ([]domain.Exercise, error)
}

const exercisesTable = "exercises"

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	start := time.Now()
	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO exercises (id, username, description, duration, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		string(exercise.ID),
		exercise.Username,
		exercise.Description,
		exercise.Duration,
		domain.CalendarDate(exercise.Date),
	).Scan(&exercise.CreatedAt)
	if err := db.HandleExecError(err, "insert exercise", exercisesTable, start); err != nil {
		return domain.Exercise{}, err
	}
	return exercise, nil
}

func (r *PgRepository) ListByUsername(ctx context.Context, username string) ([]domain.Exercise, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id::text, username, description, duration, date, created_at
		 FROM exercises
		 WHERE username = $1
		 ORDER BY seq`,
		username,
	)
	if err := db.HandleQueryError(err, nil, "list exercises", exercisesTable, start); err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var (
			e     domain.Exercise
			rawID string
		)
		if err := rows.Scan(&rawID, &e.Username, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, db.HandleQueryError(err, nil, "scan exercise", exercisesTable, start)
		}
		e.ID = domain.ID(rawID)
		e.Date = domain.CalendarDate(e.Date)
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, db.HandleQueryError(err, nil, "iterate exercises", exercisesTable, start)
	}

	return exercises, nil
}
