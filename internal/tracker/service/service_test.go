package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/clock"
	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
	exercisedomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
	userdomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

var now = time.Date(2024, 3, 14, 18, 45, 0, 0, time.UTC)

type fixture struct {
	svc       *TrackerService
	users     *memoryUsers
	exercises *memoryExercises
	clock     *clock.MockClock
	logs      *bytes.Buffer
}

func newFixture() *fixture {
	f := &fixture{
		users:     &memoryUsers{},
		exercises: &memoryExercises{},
		clock:     clock.NewMockClock(now),
		logs:      &bytes.Buffer{},
	}
	log := logger.NewWithWriter(f.logs, "test", "debug")
	f.svc = NewTrackerService(f.users, f.exercises, &sequentialIDs{}, f.clock, log)
	return f
}

func (f *fixture) mustCreateUser(t *testing.T, username string) userdomain.User {
	t.Helper()
	u, err := f.svc.CreateUser(context.Background(), CreateUserInput{Username: username})
	require.NoError(t, err)
	return u
}

func (f *fixture) mustAdd(t *testing.T, userID, description, duration, date string) {
	t.Helper()
	_, err := f.svc.AddExercise(context.Background(), userID, AddExerciseInput{
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	require.NoError(t, err)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	de, ok := commonerrors.AsDomainError(err)
	require.True(t, ok, "expected domain error, got %v", err)
	return de.HTTPStatus()
}

func TestCreateUser_ThenListContainsIt(t *testing.T) {
	f := newFixture()

	alice := f.mustCreateUser(t, "alice")
	assert.Equal(t, "alice", alice.Username)
	assert.NotEmpty(t, alice.ID)

	users, err := f.svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, "alice", users[0].Username)

	again, err := f.svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, again)
}

func TestCreateUser_AllowsDuplicateUsernames(t *testing.T) {
	f := newFixture()

	first := f.mustCreateUser(t, "bob")
	second := f.mustCreateUser(t, "bob")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateUser_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateUser(context.Background(), CreateUserInput{Username: "   "})
	assert.ErrorIs(t, err, ErrUsernameRequired)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	long := string(bytes.Repeat([]byte("a"), 101))
	_, err = f.svc.CreateUser(context.Background(), CreateUserInput{Username: long})
	assert.ErrorIs(t, err, ErrUsernameTooLong)

	for _, name := range []string{"al\x00ice", "al\xffice"} {
		_, err = f.svc.CreateUser(context.Background(), CreateUserInput{Username: name})
		assert.ErrorIs(t, err, ErrUsernameInvalid, "%q", name)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	}

	assert.Empty(t, f.users.users)
}

func TestCreateUser_StoreFailureIsInternal(t *testing.T) {
	f := newFixture()
	cause := errors.New("disk full")
	f.users.createFunc = func(context.Context, userdomain.User) (userdomain.User, error) {
		return userdomain.User{}, cause
	}

	_, err := f.svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	de, _ := commonerrors.AsDomainError(err)
	assert.NotContains(t, de.Message(), "disk full")
	assert.Contains(t, f.logs.String(), "disk full")
}

func TestListUsers_StoreFailure(t *testing.T) {
	f := newFixture()
	f.users.listFunc = func(context.Context) ([]userdomain.User, error) {
		return nil, errors.New("connection refused")
	}

	_, err := f.svc.ListUsers(context.Background())
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestAddExercise_CopiesUsernameAndParsesFields(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	res, err := f.svc.AddExercise(context.Background(), string(alice.ID), AddExerciseInput{
		Description: "run",
		Duration:    "30",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, alice, res.User)
	assert.Equal(t, "alice", res.Exercise.Username)
	assert.Equal(t, "run", res.Exercise.Description)
	assert.Equal(t, 30, res.Exercise.Duration)
	assert.Equal(t, "Mon Jan 01 2024", exercisedomain.FormatDate(res.Exercise.Date))
	require.Len(t, f.exercises.exercises, 1)
}

func TestAddExercise_DefaultsToToday(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	res, err := f.svc.AddExercise(context.Background(), string(alice.ID), AddExerciseInput{
		Description: "stretch",
		Duration:    "10",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), res.Exercise.Date)
	assert.Equal(t, "Thu Mar 14 2024", exercisedomain.FormatDate(res.Exercise.Date))
}

func TestAddExercise_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddExercise(context.Background(), "missing", AddExerciseInput{Description: "run", Duration: "30"})

	assert.ErrorIs(t, err, commonerrors.ErrUserNotFound)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Empty(t, f.exercises.exercises)
}

func TestAddExercise_Validation(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	cases := []struct {
		name string
		in   AddExerciseInput
		want error
	}{
		{"missing description", AddExerciseInput{Duration: "30"}, ErrDescriptionRequired},
		{"blank description", AddExerciseInput{Description: "  ", Duration: "30"}, ErrDescriptionRequired},
		{"missing duration", AddExerciseInput{Description: "run"}, ErrDurationRequired},
		{"non-numeric duration", AddExerciseInput{Description: "run", Duration: "half an hour"}, ErrInvalidDuration},
		{"fractional duration", AddExerciseInput{Description: "run", Duration: "2.5"}, ErrInvalidDuration},
		{"zero duration", AddExerciseInput{Description: "run", Duration: "0"}, ErrInvalidDuration},
		{"negative duration", AddExerciseInput{Description: "run", Duration: "-5"}, ErrInvalidDuration},
		{"duration past int32", AddExerciseInput{Description: "run", Duration: "3000000000"}, ErrInvalidDuration},
		{"NUL in description", AddExerciseInput{Description: "a\x00b", Duration: "30"}, ErrDescriptionInvalid},
		{"invalid UTF-8 description", AddExerciseInput{Description: "a\xffb", Duration: "30"}, ErrDescriptionInvalid},
		{"bad date", AddExerciseInput{Description: "run", Duration: "30", Date: "someday"}, ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddExercise(context.Background(), string(alice.ID), tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		})
	}
	assert.Empty(t, f.exercises.exercises)
}

func TestAddExercise_AcceptsLargestStorableDuration(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	res, err := f.svc.AddExercise(context.Background(), string(alice.ID), AddExerciseInput{
		Description: "ultra",
		Duration:    "2147483647",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, res.Exercise.Duration)
}

func TestAddExercise_LookupFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.users.findFunc = func(context.Context, userdomain.ID) (userdomain.User, error) {
		return userdomain.User{}, errors.New("timeout")
	}

	_, err := f.svc.AddExercise(context.Background(), "id-1", AddExerciseInput{Description: "run", Duration: "30"})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestGetLogs_Scenario(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")
	f.mustAdd(t, string(alice.ID), "run", "30", "2024-01-01")

	res, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)

	assert.Equal(t, alice, res.User)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "run", res.Entries[0].Description)
	assert.Equal(t, 30, res.Entries[0].Duration)
	assert.Equal(t, "Mon Jan 01 2024", exercisedomain.FormatDate(res.Entries[0].Date))
}

func TestGetLogs_FiltersThenLimits(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")
	bob := f.mustCreateUser(t, "bob")

	f.mustAdd(t, string(alice.ID), "a", "1", "2024-01-05")
	f.mustAdd(t, string(bob.ID), "b", "2", "2024-01-06")
	f.mustAdd(t, string(alice.ID), "c", "3", "2023-12-01")
	f.mustAdd(t, string(alice.ID), "d", "4", "2024-01-20")
	f.mustAdd(t, string(alice.ID), "e", "5", "2024-01-10")

	res, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{From: "2024-01-01", Limit: "2"})
	require.NoError(t, err)

	descriptions := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		descriptions = append(descriptions, e.Description)
	}
	assert.Equal(t, []string{"a", "d"}, descriptions)
}

func TestGetLogs_LenientLimit(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")
	f.mustAdd(t, string(alice.ID), "a", "1", "2024-01-05")
	f.mustAdd(t, string(alice.ID), "b", "1", "2024-01-06")

	for _, limit := range []string{"", "abc", "0", "-1"} {
		res, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{Limit: limit})
		require.NoError(t, err, limit)
		assert.Len(t, res.Entries, 2, limit)
	}
}

func TestGetLogs_InvalidBounds(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	_, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{From: "last week"})
	assert.ErrorIs(t, err, ErrInvalidFrom)

	_, err = f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{To: "2024-02-30"})
	assert.ErrorIs(t, err, ErrInvalidTo)
}

func TestGetLogs_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetLogs(context.Background(), "nope", LogQuery{})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestGetLogs_EmptyLogIsNotNil(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")

	res, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{})
	require.NoError(t, err)
	assert.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
}

func TestGetLogs_StoreFailure(t *testing.T) {
	f := newFixture()
	alice := f.mustCreateUser(t, "alice")
	f.exercises.listFunc = func(context.Context, string) ([]exercisedomain.Exercise, error) {
		return nil, errors.New("cursor killed")
	}

	_, err := f.svc.GetLogs(context.Background(), string(alice.ID), LogQuery{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}
