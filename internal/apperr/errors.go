package apperr

import "errors"

// ValidationError is a client mistake: a bad plan file, flag or request parameter.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError names a resource, such as an algorithm archive, that does not exist.
type NotFoundError struct {
	Resource string
	Name     string
	Err      error
}

func (e *NotFoundError) Error() string {
	msg := e.Resource + " " + e.Name + " not found"
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(resource, name string, err error) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
