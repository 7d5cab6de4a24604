package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound запись отсутствует или принадлежит другому владельцу.
	ErrNotFound = errors.New("not found")
	// ErrConflict нарушено ограничение уникальности.
	ErrConflict = errors.New("conflict")
	// ErrValidation некорректные параметры запроса к коллекции.
	ErrValidation = errors.New("validation failed")
)

// ConflictError описывает нарушенное ограничение уникальности.
// errors.Is срабатывает и для ErrConflict, и для ошибки самого ограничения.
type ConflictError struct {
	Constraint string
	Key        string
	Err        error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: constraint %s violated by key %q", ErrConflict, e.Constraint, e.Key)
}

func (e *ConflictError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Err}
}

// ValidationError ошибка параметра запроса к коллекции.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
