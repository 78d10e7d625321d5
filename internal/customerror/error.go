package customerror

import (
	"errors"
	"fmt"
)

// CustomError is an error with a message suitable for the operator. Anything
// else that bubbles up is a store failure and terminates the session.
type CustomError interface {
	Error() string
	UserMessage() string
}

type NotFoundError struct {
	entity string
	id     int
}

func NewNotFoundError(entity string, id int) *NotFoundError {
	return &NotFoundError{entity: entity, id: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.entity, e.id)
}

func (e *NotFoundError) UserMessage() string {
	return fmt.Sprintf("Could not find %s %d.", e.entity, e.id)
}

type ValidationError struct {
	message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.message)
}

func (e *ValidationError) UserMessage() string {
	return e.message
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// AsCustom extracts the operator-facing error, if any.
func AsCustom(err error) (CustomError, bool) {
	var custom CustomError
	if errors.As(err, &custom) {
		return custom, true
	}
	return nil, false
}
