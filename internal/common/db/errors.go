package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/observability/metrics"
)

const DriverName = "postgres"

// HandleQueryError records the query duration and maps pgx.ErrNoRows to
// notFoundErr. Other failures are counted and wrapped with the operation.
func HandleQueryError(err, notFoundErr error, operation, table string, startTime time.Time) error {
	ObserveQuery(DriverName, operation, table, startTime)

	if err == nil {
		return nil
	}
	if notFoundErr != nil && errors.Is(err, pgx.ErrNoRows) {
		return notFoundErr
	}
	CountQueryError(DriverName, operation, table, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func HandleExecError(err error, operation, table string, startTime time.Time) error {
	return HandleQueryError(err, nil, operation, table, startTime)
}

func ObserveQuery(driver, operation, collection string, startTime time.Time) {
	metrics.DBQueryDurationSeconds.
		WithLabelValues(driver, operation, collection).
		Observe(time.Since(startTime).Seconds())
}

func CountQueryError(driver, operation, collection string, err error) {
	metrics.DBQueryErrors.WithLabelValues(driver, operation, collection, errorType(err)).Inc()
}

func errorType(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "pg_" + pgErr.Code
	}
	if pgconn.Timeout(err) {
		return "timeout"
	}
	return fmt.Sprintf("%T", err)
}
