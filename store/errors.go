package store

import (
	"errors"
	"fmt"
)

// Error codes mirror the MongoDB server codes so both repository
// implementations report the same values.
const (
	CodeInternal           = 1
	CodeBadValue           = 2
	CodeNoMatchingDocument = 47
	CodeDuplicateKey       = 11000
)

var codeNames = map[int]string{
	CodeInternal:           "InternalError",
	CodeBadValue:           "BadValue",
	CodeNoMatchingDocument: "NoMatchingDocument",
	CodeDuplicateKey:       "DuplicateKey",
}

// Error is the structured failure returned by repositories.
type Error struct {
	Code    int    `json:"code"`
	Name    string `json:"codeName,omitempty"`
	Message string `json:"message"`
	cause   error
}

// NewError builds an Error for code, filling Name from the known codes.
func NewError(code int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Name:    codeNames[code],
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("store error %d (%s): %s", e.Code, e.Name, e.Message)
	}
	return fmt.Sprintf("store error %d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error with the same code, so callers can compare
// against ErrNotFound and ErrDuplicateKey with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrNotFound     = &Error{Code: CodeNoMatchingDocument, Name: codeNames[CodeNoMatchingDocument], Message: "no matching document"}
	ErrDuplicateKey = &Error{Code: CodeDuplicateKey, Name: codeNames[CodeDuplicateKey], Message: "duplicate key"}
)

// NotFound reports a missing document key.
func NotFound(id string) *Error {
	return NewError(CodeNoMatchingDocument, "no document found with id %q", id)
}

// Wrap returns an Error with code carrying err as its cause and message.
func Wrap(code int, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Name: codeNames[code], Message: err.Error(), cause: err}
}

// AsError converts err into a *Error. Errors that are already a *Error (or
// wrap one) are returned as is; anything else becomes an InternalError.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return Wrap(CodeInternal, err)
}
