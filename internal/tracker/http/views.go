package http

import (
	exercisedomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/exercise/domain"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/tracker/service"
	userdomain "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/user/domain"
)

type userView struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type exerciseView struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type logEntryView struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logView struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Count    int            `json:"count"`
	Log      []logEntryView `json:"log"`
}

func toUserView(u userdomain.User) userView {
	return userView{Username: u.Username, ID: string(u.ID)}
}

func toUserViews(users []userdomain.User) []userView {
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return out
}

func toExerciseView(res service.ExerciseResult) exerciseView {
	return exerciseView{
		ID:          string(res.User.ID),
		Username:    res.User.Username,
		Date:        exercisedomain.FormatDate(res.Exercise.Date),
		Duration:    res.Exercise.Duration,
		Description: res.Exercise.Description,
	}
}

func toLogView(res service.LogResult) logView {
	entries := make([]logEntryView, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, logEntryView{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        exercisedomain.FormatDate(e.Date),
		})
	}
	return logView{
		ID:       string(res.User.ID),
		Username: res.User.Username,
		Count:    len(entries),
		Log:      entries,
	}
}
