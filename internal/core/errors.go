package core

import "errors"

// ValidationError marks a rejected input (empty required field). The API
// layer maps these to HTTP 400; everything else is a 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErr(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrHistoryUnavailable is returned when the history document cannot be
// loaded and re-initialization failed. Unlike the session there is no
// template to regenerate history from, so this is a hard error.
var ErrHistoryUnavailable = errors.New("history data unavailable")
