package custom_error

import (
	"errors"
	"fmt"
	"strings"
)

type CustomError interface {
	Error() string
}

// ValidationError reports bad user input; Field names the offending property.
type ValidationError struct {
	Field   string `json:"property"`
	Message string `json:"message"`
}

type NotFoundError struct {
	Resource string
	ID       string
}

// InsufficientStockError lists every entry that could not be covered by current stock.
type InsufficientStockError struct {
	Items []string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *InsufficientStockError) Error() string {
	return "not enough stock for: " + strings.Join(e.Items, ", ")
}

func NewValidationError(field, message string) CustomError {
	return &ValidationError{Field: field, Message: message}
}

func NewNotFoundError(resource, id string) CustomError {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewInsufficientStockError(items []string) CustomError {
	return &InsufficientStockError{Items: append([]string(nil), items...)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var target *InsufficientStockError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
