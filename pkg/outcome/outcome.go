// Package outcome reports the result of fallible SDK operations as values:
// either a success carrying a value, or a failure carrying an
// *sdkerror.Error and, optionally, a default value.
package outcome

import (
	"fmt"

	"github.com/zeebo/errs"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/gamesdk-outcome/pkg/sdkerror"
)

// ErrInvalidAccess is returned when reading the value of a failure that was
// built without a default value.
var ErrInvalidAccess = errs.Class("invalid outcome access")

// Outcome is either a success with a value of type T or a failure with an
// error. The zero value is a success carrying T's zero value, so an outcome
// that was never constructed reads as Success.
//
// Outcomes have no mutators: the classification chosen at construction
// never changes, and copies can be shared between goroutines freely.
type Outcome[T any] struct {
	value T
	err   *sdkerror.Error
	// partial is set on failures that carry a default value
	partial bool
}

type (
	Long    = Outcome[int64]
	Generic = Outcome[struct{}]
	String  = Outcome[string]
)

// Success builds a successful outcome carrying v. A zero Outcome reads the
// same as Success of T's zero value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Done is the successful outcome of an operation that produces no value.
func Done() Generic {
	return Generic{}
}

// Failure builds a failed outcome. A nil error is replaced with an internal
// service error, so a failure always carries a reason.
func Failure[T any](err *sdkerror.Error) Outcome[T] {
	return Outcome[T]{err: failureReason(err)}
}

// FailureWithDefault builds a failed outcome that still hands out partial
// from Value, for callers that need a safe default next to the failure.
func FailureWithDefault[T any](err *sdkerror.Error, partial T) Outcome[T] {
	return Outcome[T]{
		value:   partial,
		err:     failureReason(err),
		partial: true,
	}
}

func failureReason(err *sdkerror.Error) *sdkerror.Error {
	if err == nil {
		return sdkerror.Newf(sdkerror.InternalService, "failure reported without an error")
	}
	return err
}

// IsSuccess reports whether o carries no error; true for Success and for a
// zero Outcome.
func (o Outcome[T]) IsSuccess() bool {
	return o.err == nil
}

// HasValue reports whether Value would succeed.
func (o Outcome[T]) HasValue() bool {
	return o.err == nil || o.partial
}

// Value returns the carried value. On a failure without a default value it
// returns an ErrInvalidAccess error instead of a zero value.
func (o Outcome[T]) Value() (T, error) {
	if !o.HasValue() {
		var zero T
		return zero, ErrInvalidAccess.New("value of failed outcome: %v", o.err)
	}
	return o.value, nil
}

// MustValue is Value that panics with the ErrInvalidAccess error.
func (o Outcome[T]) MustValue() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns def when o has no value to hand out.
func (o Outcome[T]) ValueOr(def T) T {
	if !o.HasValue() {
		return def
	}
	return o.value
}

// Err returns the failure reason, nil on success.
func (o Outcome[T]) Err() *sdkerror.Error {
	return o.err
}

// Get unpacks the outcome into Go's usual value and error pair. The error is
// a nil interface on success.
func (o Outcome[T]) Get() (T, error) {
	if o.err == nil {
		return o.value, nil
	}
	return o.value, o.err
}

// String renders success(v), failure(err) or failure(err, default=v).
func (o Outcome[T]) String() string {
	switch {
	case o.err == nil:
		return fmt.Sprintf("success(%v)", o.value)
	case o.partial:
		return fmt.Sprintf("failure(%v, default=%v)", o.err, o.value)
	default:
		return fmt.Sprintf("failure(%v)", o.err)
	}
}

// MarshalLogObject logs the classification, the value when there is one, and
// the error.
func (o Outcome[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("success", o.IsSuccess())
	if o.HasValue() {
		if err := enc.AddReflected("value", o.value); err != nil {
			return err
		}
	}
	if o.err != nil {
		return enc.AddObject("error", o.err)
	}
	return nil
}
