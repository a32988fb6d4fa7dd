package model

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid mobile number or PIN")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountLocked = errors.New("account locked due to too many failed attempts")
var ErrAccountInactive = errors.New("account deactivated")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrNotFound = errors.New("not found")
var ErrForbidden = errors.New("not the owner of this resource")

// ValidationError reports a malformed input field before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a duplicate unique field, whether caught by the
// pre-insert existence check or by the store's unique index on a racing
// insert.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already registered", e.Field)
}
