// Package qlearning implements tabular Q-Learning over any comparable
// state and action types.
//
// The package is split the same way an agent is: a ValueStore holds the
// learned action values, a Policy reads them to choose actions, a Learner
// writes them from observed transitions, and an Online experiment drives
// the three against an Environment for a number of episodes.
package qlearning

import (
	"gonum.org/v1/gonum/floats"
)

// ValueStore is a sparse table of action values keyed by (state, action).
// Pairs that were never written read as zero, so the table only grows with
// the pairs a learner actually updates.
//
// A ValueStore is not safe for concurrent use. It is meant to be created
// once per training run, written by a Learner during training and only
// read afterwards.
type ValueStore[S comparable, A comparable] struct {
	values  map[S]map[A]float64
	entries int
}

// NewValueStore returns a new, empty ValueStore
func NewValueStore[S comparable, A comparable]() *ValueStore[S, A] {
	return &ValueStore[S, A]{values: make(map[S]map[A]float64)}
}

// Value returns the stored value of taking action in state, or zero if
// the pair has never been set
func (v *ValueStore[S, A]) Value(state S, action A) float64 {
	return v.values[state][action]
}

// Set stores the value of taking action in state
func (v *ValueStore[S, A]) Set(state S, action A, value float64) {
	row, ok := v.values[state]
	if !ok {
		row = make(map[A]float64)
		v.values[state] = row
	}
	if _, ok := row[action]; !ok {
		v.entries++
	}
	row[action] = value
}

// Len returns the number of (state, action) pairs stored
func (v *ValueStore[S, A]) Len() int {
	return v.entries
}

// States returns the number of distinct states stored
func (v *ValueStore[S, A]) States() int {
	return len(v.values)
}

// Max returns the largest value among actions in state. The maximum over
// no actions is defined as zero, which is the value of a terminal state.
func (v *ValueStore[S, A]) Max(state S, actions []A) float64 {
	if len(actions) == 0 {
		return 0
	}
	return floats.Max(v.actionValues(state, actions))
}

// Best returns the indices into actions of every action whose value in
// state is maximal, in the order the actions were given. Best returns nil
// if actions is empty.
func (v *ValueStore[S, A]) Best(state S, actions []A) []int {
	if len(actions) == 0 {
		return nil
	}

	values := v.actionValues(state, actions)
	maxValue := floats.Max(values)

	best := make([]int, 0, 1)
	for i, value := range values {
		if value == maxValue {
			best = append(best, i)
		}
	}
	return best
}

// actionValues returns the values of each action in state
func (v *ValueStore[S, A]) actionValues(state S, actions []A) []float64 {
	row := v.values[state]
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = row[action]
	}
	return values
}
