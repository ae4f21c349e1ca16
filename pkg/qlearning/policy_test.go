package qlearning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestGreedy(t *testing.T) {
	store := NewValueStore[string, string]()
	policy := NewGreedy(store)

	_, ok := policy.SelectAction("s", nil)
	assert.False(t, ok)

	// Ties resolve to the first action given
	action, ok := policy.SelectAction("s", []string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "a", action)

	store.Set("s", "b", 1)
	store.Set("s", "c", 1)
	action, _ = policy.SelectAction("s", []string{"a", "b", "c"})
	assert.Equal(t, "b", action)
	action, _ = policy.SelectAction("s", []string{"c", "a", "b"})
	assert.Equal(t, "c", action)
}

func TestEGreedyExploit(t *testing.T) {
	store := NewValueStore[string, string]()
	store.Set("s", "b", 1)
	store.Set("s", "c", 1)
	policy := NewEGreedy(store, 0, rand.NewSource(1))

	chosen := make(map[string]int)
	for i := 0; i < 500; i++ {
		action, ok := policy.SelectAction("s", []string{"a", "b", "c"})
		assert.True(t, ok)
		chosen[action]++
	}

	assert.Zero(t, chosen["a"])
	assert.Positive(t, chosen["b"])
	assert.Positive(t, chosen["c"])
}

func TestEGreedyExplore(t *testing.T) {
	store := NewValueStore[string, string]()
	store.Set("s", "a", 10)
	policy := NewEGreedy(store, 1, rand.NewSource(2))

	chosen := make(map[string]int)
	for i := 0; i < 600; i++ {
		action, _ := policy.SelectAction("s", []string{"a", "b", "c"})
		chosen[action]++
	}

	assert.Len(t, chosen, 3)
	for _, count := range chosen {
		assert.InDelta(t, 200, count, 60)
	}
}

func TestEGreedyNoActions(t *testing.T) {
	policy := NewEGreedy(NewValueStore[string, string](), 0.1, rand.NewSource(1))

	_, ok := policy.SelectAction("s", []string{})
	assert.False(t, ok)
}

func TestEGreedyEpsilon(t *testing.T) {
	policy := NewEGreedy(NewValueStore[string, string](), 0.1, rand.NewSource(1))
	assert.Equal(t, 0.1, policy.Epsilon())

	assert.Panics(t, func() { NewEGreedy(NewValueStore[string, string](), 1.5, rand.NewSource(1)) })
	assert.Panics(t, func() { NewEGreedy(NewValueStore[string, string](), -0.1, rand.NewSource(1)) })
}
