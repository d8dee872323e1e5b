// Package selector picks one item out of a set of equivalent endpoints, such
// as the Consul agents a client may talk to. The strategy is chosen by the
// caller so that tests can pin it.
package selector

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Selector chooses one element of items. ok is false when items is empty.
type Selector[T any] interface {
	Pick(items []T) (item T, ok bool)
}

// Random picks uniformly at random.
type Random[T any] struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom returns a Random seeded with seed. Use NewRandomFromTime in production.
func NewRandom[T any](seed int64) *Random[T] {
	return &Random[T]{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandomFromTime returns a Random seeded from the wall clock.
func NewRandomFromTime[T any]() *Random[T] {
	return NewRandom[T](time.Now().UnixNano())
}

func (r *Random[T]) Pick(items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	r.mu.Lock()
	i := r.rnd.Intn(len(items))
	r.mu.Unlock()
	return items[i], true
}

// First always picks the first element.
type First[T any] struct{}

func (First[T]) Pick(items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// RoundRobin cycles through the elements.
type RoundRobin[T any] struct {
	next atomic.Uint64
}

func (r *RoundRobin[T]) Pick(items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	n := r.next.Add(1) - 1
	return items[n%uint64(len(items))], true
}
