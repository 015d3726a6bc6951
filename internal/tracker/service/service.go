package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/clock"
	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/idgen"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
	exercisedomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
	exerciserepo "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/repository"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/observability/metrics"
	userdomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
	userrepo "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/repository"
)

type CreateUserInput struct {
	Username string
}

type AddExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// LogQuery carries the raw query parameters of a log request.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type ExerciseResult struct {
	User     userdomain.User
	Exercise exercisedomain.Exercise
}

type LogResult struct {
	User    userdomain.User
	Entries []exercisedomain.Exercise
}

type Service interface {
	CreateUser(ctx context.Context, in CreateUserInput) (userdomain.User, error)
	ListUsers(ctx context.Context) ([]userdomain.User, error)
	AddExercise(ctx context.Context, userID string, in AddExerciseInput) (ExerciseResult, error)
	GetLogs(ctx context.Context, userID string, q LogQuery) (LogResult, error)
}

type TrackerService struct {
	users     userrepo.Repository
	exercises exerciserepo.Repository
	ids       idgen.IDGenerator
	clock     clock.Clock
	validator *InputValidator
	log       *logger.Logger
}

func NewTrackerService(
	users userrepo.Repository,
	exercises exerciserepo.Repository,
	ids idgen.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *TrackerService {
	return &TrackerService{
		users:     users,
		exercises: exercises,
		ids:       ids,
		clock:     clk,
		validator: NewInputValidator(),
		log:       log,
	}
}

func (s *TrackerService) CreateUser(ctx context.Context, in CreateUserInput) (userdomain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := s.validator.ValidateUser(in); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "create_user_invalid",
		}).Warnf("create user rejected: %v", err)
		return userdomain.User{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return userdomain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user, err := s.users.Create(ctx, userdomain.User{
		ID:        userdomain.ID(id),
		Username:  in.Username,
		CreatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": in.Username,
			"action":   "create_user_failed",
		}).Errorf("create user failed: %v", err)
		return userdomain.User{}, commonerrors.ErrStoreFailure.WithCause(err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"action":   "user_created",
	}).Info("user created")
	return user, nil
}

func (s *TrackerService) ListUsers(ctx context.Context) ([]userdomain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_users_failed",
		}).Errorf("list users failed: %v", err)
		return nil, commonerrors.ErrStoreFailure.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"count":  len(users),
		"action": "users_listed",
	}).Debug("users listed")
	return users, nil
}

func (s *TrackerService) AddExercise(ctx context.Context, userID string, in AddExerciseInput) (ExerciseResult, error) {
	user, err := s.findUser(ctx, userID, "add_exercise")
	if err != nil {
		return ExerciseResult{}, err
	}

	in.Description = strings.TrimSpace(in.Description)
	duration, err := s.validator.ValidateExercise(in)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "add_exercise_invalid",
		}).Warnf("add exercise rejected: %v", err)
		return ExerciseResult{}, err
	}

	date, err := s.exerciseDate(in.Date)
	if err != nil {
		return ExerciseResult{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return ExerciseResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	exercise, err := s.exercises.Create(ctx, exercisedomain.Exercise{
		ID:          exercisedomain.ID(id),
		Username:    user.Username,
		Description: in.Description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   s.clock.Now().UTC(),
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "add_exercise_failed",
		}).Errorf("add exercise failed: %v", err)
		return ExerciseResult{}, commonerrors.ErrStoreFailure.WithCause(err)
	}

	metrics.ExercisesCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":     userID,
		"username":    user.Username,
		"exercise_id": exercise.ID,
		"action":      "exercise_added",
	}).Info("exercise added")
	return ExerciseResult{User: user, Exercise: exercise}, nil
}

func (s *TrackerService) GetLogs(ctx context.Context, userID string, q LogQuery) (LogResult, error) {
	user, err := s.findUser(ctx, userID, "get_logs")
	if err != nil {
		return LogResult{}, err
	}

	filter, err := parseLogQuery(q)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "get_logs_invalid",
		}).Warnf("get logs rejected: %v", err)
		return LogResult{}, err
	}

	all, err := s.exercises.ListByUsername(ctx, user.Username)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  "get_logs_failed",
		}).Errorf("get logs failed: %v", err)
		return LogResult{}, commonerrors.ErrStoreFailure.WithCause(err)
	}

	entries := exercisedomain.FilterLog(all, filter)

	metrics.LogEntriesReturned.Observe(float64(len(entries)))
	s.log.WithFields(ctx, logger.Fields{
		"user_id":  userID,
		"username": user.Username,
		"total":    len(all),
		"returned": len(entries),
		"action":   "logs_fetched",
	}).Info("logs fetched")
	return LogResult{User: user, Entries: entries}, nil
}

func (s *TrackerService) findUser(ctx context.Context, userID, action string) (userdomain.User, error) {
	user, err := s.users.FindByID(ctx, userdomain.ID(userID))
	if err == nil {
		return user, nil
	}

	if errors.Is(err, userrepo.ErrUserNotFound) {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"action":  action + "_user_not_found",
		}).Warn("user not found")
		return userdomain.User{}, commonerrors.ErrUserNotFound
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"action":  action + "_lookup_failed",
	}).Errorf("user lookup failed: %v", err)
	return userdomain.User{}, commonerrors.ErrStoreFailure.WithCause(err)
}

// exerciseDate falls back to today's date when the caller sent none.
func (s *TrackerService) exerciseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return exercisedomain.CalendarDate(s.clock.Now().UTC()), nil
	}
	date, err := exercisedomain.ParseDate(raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func parseLogQuery(q LogQuery) (exercisedomain.LogFilter, error) {
	var filter exercisedomain.LogFilter

	if strings.TrimSpace(q.From) != "" {
		from, err := exercisedomain.ParseDate(q.From)
		if err != nil {
			return filter, ErrInvalidFrom
		}
		filter.From = from
	}

	if strings.TrimSpace(q.To) != "" {
		to, err := exercisedomain.ParseDate(q.To)
		if err != nil {
			return filter, ErrInvalidTo
		}
		filter.To = to
	}

	filter.Limit = exercisedomain.ParseLimit(q.Limit)
	return filter, nil
}
