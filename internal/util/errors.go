package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmptyQuestionPool  = errors.New("no questions available for this selection")
	ErrNoActiveSession    = errors.New("no active test session")
	ErrSessionComplete    = errors.New("test session already complete")
	ErrSessionNotComplete = errors.New("test session not complete yet")
	ErrMaterialNotFound   = errors.New("material not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
)
