package qlearning

import "fmt"

// Learner updates a ValueStore with the Q-Learning rule
//
//	Q(s, a) ← Q(s, a) + α (r + γ max_a' Q(s', a') − Q(s, a))
//
// where the maximum ranges over the legal actions in s'. When s' has no
// legal actions it is terminal and the bootstrap term is zero.
type Learner[S comparable, A comparable] struct {
	store        *ValueStore[S, A]
	learningRate float64
	discount     float64
}

// NewLearner creates a new Learner writing to store
func NewLearner[S comparable, A comparable](store *ValueStore[S, A], learningRate,
	discount float64) *Learner[S, A] {
	if learningRate <= 0 || learningRate > 1 {
		panic(fmt.Sprintf("newLearner: learning rate must be in (0, 1], got %v", learningRate))
	}
	if discount < 0 || discount > 1 {
		panic(fmt.Sprintf("newLearner: discount must be in [0, 1], got %v", discount))
	}
	return &Learner[S, A]{store, learningRate, discount}
}

// Update performs a single update for the transition (state, action,
// reward, next), where nextActions are the legal actions in next. It
// returns the TD error of the transition before the update.
func (l *Learner[S, A]) Update(state S, action A, reward float64, next S,
	nextActions []A) float64 {
	current := l.store.Value(state, action)
	target := reward + l.discount*l.store.Max(next, nextActions)

	tdError := target - current
	l.store.Set(state, action, current+l.learningRate*tdError)
	return tdError
}
