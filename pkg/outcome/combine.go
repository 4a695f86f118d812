package outcome

import "github.com/Philanthropists/gamesdk-outcome/pkg/sdkerror"

// FromError bridges a Go (value, error) pair into an outcome.
func FromError[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](sdkerror.From(err))
	}
	return Success(v)
}

// Map transforms the carried value. Failures stay failures; a default value
// is transformed as well.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	switch {
	case o.err == nil:
		return Success(fn(o.value))
	case o.partial:
		return FailureWithDefault(o.err, fn(o.value))
	default:
		return Failure[U](o.err)
	}
}

// Then runs the next fallible step only when o succeeded.
func Then[T, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	if o.err != nil {
		return Failure[U](o.err)
	}
	return fn(o.value)
}

// Partition splits outcomes into the values of the successes and the
// errors of the failures, keeping their order.
func Partition[T any](outs []Outcome[T]) ([]T, []*sdkerror.Error) {
	values := make([]T, 0, len(outs))
	var failures []*sdkerror.Error

	for _, o := range outs {
		if o.err != nil {
			failures = append(failures, o.err)
			continue
		}
		values = append(values, o.value)
	}

	return values, failures
}
