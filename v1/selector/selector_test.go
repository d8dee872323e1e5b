package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	for _, s := range []Selector[string]{NewRandom[string](1), First[string]{}, &RoundRobin[string]{}} {
		_, ok := s.Pick(nil)
		assert.False(t, ok)
	}
}

func TestFirst(t *testing.T) {
	v, ok := First[int]{}.Pick([]int{7, 8, 9})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestRoundRobin(t *testing.T) {
	rr := &RoundRobin[string]{}
	items := []string{"a", "b", "c"}

	var got []string
	for i := 0; i < 5; i++ {
		v, _ := rr.Pick(items)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b"}, got)
}

func TestRandomSeeded(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	a, b := NewRandom[string](42), NewRandom[string](42)

	for i := 0; i < 20; i++ {
		x, _ := a.Pick(items)
		y, _ := b.Pick(items)
		assert.Equal(t, x, y)
		assert.Contains(t, items, x)
	}
}
