package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
)

var (
	ErrSessionDateRequired  = fmt.Errorf("%w: date is required", ErrInvalidInput)
	ErrWorkoutTypeRequired  = fmt.Errorf("%w: workout_type is required", ErrInvalidInput)
	ErrWorkoutTypeTooLong   = fmt.Errorf("%w: workout_type is too long (max %d chars)", ErrInvalidInput, MaxWorkoutTypeLen)
	ErrWorkoutRequired      = fmt.Errorf("%w: workout must be an array", ErrInvalidInput)
	ErrInvalidBodyWeight    = fmt.Errorf("%w: body_weight cannot be negative", ErrInvalidInput)
	ErrExerciseNameRequired = fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	ErrExerciseNameTooLong  = fmt.Errorf("%w: exercise name is too long (max %d chars)", ErrInvalidInput, MaxExerciseNameLen)
	ErrSetIncomplete        = fmt.Errorf("%w: every set needs weight and reps", ErrInvalidInput)
	ErrInvalidSet           = fmt.Errorf("%w: set weight and reps cannot be negative", ErrInvalidInput)
	ErrInvalidDate          = fmt.Errorf("%w: unrecognised date format", ErrInvalidInput)
)

// StoreError marks err as a failure of the backing store, keeping the cause in the chain.
func StoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
