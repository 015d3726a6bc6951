package service

import (
	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
)

var (
	ErrUsernameRequired    = commonerrors.NewValidationError("USERNAME_REQUIRED", "username is required")
	ErrUsernameTooLong     = commonerrors.NewValidationError("USERNAME_TOO_LONG", "username must be at most 100 characters")
	ErrUsernameInvalid     = commonerrors.NewValidationError("USERNAME_INVALID", "username must be valid UTF-8 text without NUL characters")
	ErrDescriptionRequired = commonerrors.NewValidationError("DESCRIPTION_REQUIRED", "description is required")
	ErrDescriptionTooLong  = commonerrors.NewValidationError("DESCRIPTION_TOO_LONG", "description must be at most 1000 characters")
	ErrDescriptionInvalid  = commonerrors.NewValidationError("DESCRIPTION_INVALID", "description must be valid UTF-8 text without NUL characters")
	ErrDurationRequired    = commonerrors.NewValidationError("DURATION_REQUIRED", "duration is required")
	ErrInvalidDuration     = commonerrors.NewValidationError("INVALID_DURATION", "duration must be a positive whole number of minutes")
	ErrInvalidDate         = commonerrors.NewValidationError("INVALID_DATE", "date must be formatted as yyyy-mm-dd")
	ErrInvalidFrom         = commonerrors.NewValidationError("INVALID_FROM", "from must be formatted as yyyy-mm-dd")
	ErrInvalidTo           = commonerrors.NewValidationError("INVALID_TO", "to must be formatted as yyyy-mm-dd")
)
