// Package errors defines the closed set of service errors understood by the
// HTTP layer. Anything that is not one of these kinds is an internal error.
package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	msg    string
	fields map[string]string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// NewFieldValidationError carries per-field messages, keyed by the request field name.
func NewFieldValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{msg: "invalid request", fields: fields}
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

type UnauthorizedError struct {
	msg string
}

func NewUnauthorizedError(msg string) *UnauthorizedError {
	return &UnauthorizedError{msg: msg}
}

func (e *UnauthorizedError) Error() string {
	return e.msg
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

type ForbiddenError struct {
	userID string
}

func NewForbiddenError(userID string) *ForbiddenError {
	return &ForbiddenError{userID: userID}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("user %q is not allowed to perform this action", e.userID)
}

func IsForbiddenError(err error) bool {
	var e *ForbiddenError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	resource string
	id       any
}

func NewResourceNotFoundError(resource string, id any) *ResourceNotFoundError {
	return &ResourceNotFoundError{resource: resource, id: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.resource, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ConflictError reports a request that is valid but cannot be applied to the
// current state of the resource (hearts already full, parent still has children...).
type ConflictError struct {
	msg string
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.msg
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
