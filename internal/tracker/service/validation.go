package service

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type userFields struct {
	Username string `validate:"required,max=100,storable"`
}

type exerciseFields struct {
	Description string `validate:"required,max=1000,storable"`
	Duration    string `validate:"required"`
}

type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("storable", func(fl validator.FieldLevel) bool {
		return isStorableText(fl.Field().String())
	})
	return &InputValidator{validate: v}
}

// isStorableText reports whether s is valid UTF-8 without NUL bytes, the
// text every store accepts.
func isStorableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

func (v *InputValidator) ValidateUser(in CreateUserInput) error {
	return translate(v.validate.Struct(userFields{Username: in.Username}))
}

// ValidateExercise checks description and duration and returns the parsed
// duration in minutes.
func (v *InputValidator) ValidateExercise(in AddExerciseInput) (int, error) {
	if err := translate(v.validate.Struct(exerciseFields{
		Description: in.Description,
		Duration:    in.Duration,
	})); err != nil {
		return 0, err
	}

	// durations are stored in a 32-bit integer column
	duration, err := strconv.ParseInt(strings.TrimSpace(in.Duration), 10, 32)
	if err != nil || duration <= 0 {
		return 0, ErrInvalidDuration
	}
	return int(duration), nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Username":
		switch fe.Tag() {
		case "max":
			return ErrUsernameTooLong
		case "storable":
			return ErrUsernameInvalid
		}
		return ErrUsernameRequired
	case "Description":
		switch fe.Tag() {
		case "max":
			return ErrDescriptionTooLong
		case "storable":
			return ErrDescriptionInvalid
		}
		return ErrDescriptionRequired
	case "Duration":
		return ErrDurationRequired
	}
	return err
}
