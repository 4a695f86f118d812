// Package pipe moves outcomes of fallible operations between goroutines.
// Every stage stops as soon as done is closed.
package pipe

import (
	"sync"

	"github.com/Philanthropists/gamesdk-outcome/pkg/outcome"
	"github.com/Philanthropists/gamesdk-outcome/pkg/sdkerror"
)

// OrDone forwards c until it closes or done is closed
func OrDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}

// OnError passes failed outcomes to handler and streams the values of the
// successful ones
func OnError[T any](done <-chan struct{}, in <-chan outcome.Outcome[T], handler func(outcome.Outcome[T])) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for o := range OrDone(done, in) {
			if !o.IsSuccess() {
				handler(o)
				continue
			}

			v, _ := o.Value()
			select {
			case <-done:
				return
			case out <- v:
			}
		}
	}()

	return out
}

// IgnoreOnError only streams the values of successful outcomes
func IgnoreOnError[T any](done <-chan struct{}, in <-chan outcome.Outcome[T]) <-chan T {
	return OnError(done, in, func(outcome.Outcome[T]) {
		// nop operation
	})
}

// Map applies mapper to every value of in
func Map[A, B any](done <-chan struct{}, in <-chan A, mapper func(A) outcome.Outcome[B]) <-chan outcome.Outcome[B] {
	out := make(chan outcome.Outcome[B])

	go func() {
		defer close(out)

		for v := range OrDone(done, in) {
			select {
			case <-done:
				return
			case out <- mapper(v):
			}
		}
	}()

	return out
}

// ConcurrentMap is Map with goroutines workers; output order is not kept
func ConcurrentMap[A, B any](done <-chan struct{}, goroutines int, in <-chan A, mapper func(A) outcome.Outcome[B]) <-chan outcome.Outcome[B] {
	if goroutines <= 0 {
		goroutines = 1
	}

	out := make(chan outcome.Outcome[B], goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			for v := range OrDone(done, in) {
				select {
				case <-done:
					return
				case out <- mapper(v):
				}
			}
		}()
	}

	go func() {
		defer close(out)
		wg.Wait()
	}()

	return out
}

// AwaitResult runs fn in its own goroutine and delivers its single outcome.
// Nothing is delivered when done closes first.
func AwaitResult[T any](done <-chan struct{}, fn func() (T, error)) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T], 1)

	go func() {
		defer close(out)

		v, err := fn()
		select {
		case <-done:
			return
		default:
		}

		select {
		case <-done:
		case out <- outcome.FromError(v, err):
		}
	}()

	return out
}

// Collect drains in and returns the successful values together with the
// first failure seen. When done closes early the outcome is a canceled
// failure carrying what was collected so far.
func Collect[T any](done <-chan struct{}, in <-chan outcome.Outcome[T]) outcome.Outcome[[]T] {
	var (
		values []T
		first  *sdkerror.Error
	)

	for {
		select {
		case <-done:
			return outcome.FailureWithDefault(sdkerror.New(sdkerror.Canceled), values)
		case o, ok := <-in:
			if !ok {
				if first != nil {
					return outcome.FailureWithDefault(first, values)
				}
				return outcome.Success(values)
			}

			if !o.IsSuccess() {
				if first == nil {
					first = o.Err()
				}
				continue
			}

			v, _ := o.Value()
			values = append(values, v)
		}
	}
}
