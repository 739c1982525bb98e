package services

import (
	"errors"
	"net/http"

	"fittrack-backend-go/internal/store"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation_failure"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindPersistence  ErrorKind = "persistence_failure"
)

// ServiceError is the tagged failure returned by tracker operations. Message
// is safe to show to the caller; Err carries the underlying cause for logs.
type ServiceError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e ServiceError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ServiceError) Unwrap() error {
	return e.Err
}

func ErrNotFound(msg string) error {
	return ServiceError{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func ErrBadRequest(msg string) error {
	return ServiceError{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

func ErrPersistence(msg string, err error) error {
	return ServiceError{Kind: KindPersistence, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// storeError maps a store failure onto the service taxonomy. A dangling
// reference is the caller's fault; anything else is a persistence failure.
func storeError(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, store.ErrReference):
		return ServiceError{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg + ": unknown reference", Err: err}
	case errors.Is(err, store.ErrNotFound):
		return ServiceError{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg + ": not found", Err: err}
	default:
		return ErrPersistence(msg, err)
	}
}

// AsServiceError reports whether err carries a ServiceError.
func AsServiceError(err error) (ServiceError, bool) {
	var svcErr ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return ServiceError{}, false
}
