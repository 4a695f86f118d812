// Package memo caches successful outcomes of repeatable SDK calls.
package memo

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Philanthropists/gamesdk-outcome/internal/logging"
	"github.com/Philanthropists/gamesdk-outcome/pkg/outcome"
	"github.com/Philanthropists/gamesdk-outcome/pkg/sdkerror"
)

type inMemoryCache interface {
	SetDefault(k string, v any)
	Get(k string) (any, bool)
	Delete(k string)
}

type Producer[T any] func(context.Context) outcome.Outcome[T]

// Memo remembers the successful outcome of a producer per key, for
// ExpirationTime. Failures are never remembered. The zero value is ready to
// use.
type Memo[T any] struct {
	ExpirationTime  time.Duration
	CleanupInterval time.Duration

	once  sync.Once
	cache inMemoryCache
}

func (m *Memo[T]) init() {
	m.once.Do(func() {
		const (
			defaultExpirationTime  = 5 * time.Minute
			defaultCleanupInterval = 1 * time.Minute
		)

		expTime := defaultExpirationTime
		if m.ExpirationTime != 0 {
			expTime = m.ExpirationTime
		}

		cleanupInt := defaultCleanupInterval
		if m.CleanupInterval != 0 {
			cleanupInt = m.CleanupInterval
		}

		m.cache = cache.New(expTime, cleanupInt)
	})
}

// Do returns the remembered success for key or runs fn. A done context fails
// with a canceled error, even when key is cached.
func (m *Memo[T]) Do(ctx context.Context, key string, fn Producer[T]) outcome.Outcome[T] {
	m.init()
	log := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return outcome.Failure[T](sdkerror.Wrap(sdkerror.Canceled, err))
	}

	if v, found := m.cache.Get(key); found {
		log.Debug("outcome cache hit", logging.String("key", key))
		val, _ := v.(T)
		return outcome.Success(val)
	}

	o := fn(ctx)
	if !o.IsSuccess() {
		log.Debug("outcome not cached",
			logging.String("key", key),
			logging.SDKError("error", o.Err()),
		)
		return o
	}

	v, _ := o.Value()
	m.cache.SetDefault(key, v)

	return o
}

func (m *Memo[T]) Forget(key string) {
	m.init()
	m.cache.Delete(key)
}
