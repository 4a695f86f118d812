// Package sdkerror describes why a game server SDK operation failed.
package sdkerror

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Error is an immutable failure descriptor: a classification code, a short
// name and a human readable message, optionally caused by another error.
type Error struct {
	errType ErrorType
	name    string
	message string
	cause   error
}

func New(t ErrorType) *Error {
	info := t.info()
	return &Error{
		errType: t,
		name:    info.name,
		message: info.message,
	}
}

func Newf(t ErrorType, format string, args ...any) *Error {
	return &Error{
		errType: t,
		name:    t.info().name,
		message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns a descriptor of type t caused by cause. A nil cause gives nil.
func Wrap(t ErrorType, cause error) *Error {
	if cause == nil {
		return nil
	}

	e := New(t)
	e.cause = cause
	return e
}

// From converts any error into a descriptor. Descriptors already present in
// the chain are returned as they are.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Wrap(Canceled, err)
	}

	return Wrap(InternalService, err)
}

func (e *Error) Type() ErrorType {
	return e.errType
}

func (e *Error) Name() string {
	return e.name
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.errType, e.message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a descriptor of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.errType == t.errType
}

func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", e.errType.String())
	enc.AddString("name", e.name)
	enc.AddString("message", e.message)
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	return nil
}
