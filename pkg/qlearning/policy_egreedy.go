package qlearning

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a ValueStore. With
// probability ε an action is chosen uniformly at random, otherwise the
// action with the largest value is chosen, breaking ties uniformly at
// random.
type EGreedy[S comparable, A comparable] struct {
	store   *ValueStore[S, A]
	epsilon float64
	source  rand.Source // Source for random number generation
}

// NewEGreedy constructs a new EGreedy policy reading from store, where e is
// the probability with which a random action is selected. All randomness
// is drawn from source so that runs can be reproduced.
func NewEGreedy[S comparable, A comparable](store *ValueStore[S, A], e float64,
	source rand.Source) *EGreedy[S, A] {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("newEGreedy: epsilon must be in [0, 1], got %v", e))
	}
	return &EGreedy[S, A]{store: store, epsilon: e, source: source}
}

// Epsilon returns the exploration probability
func (p *EGreedy[S, A]) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy[S, A]) SelectAction(state S, actions []A) (A, bool) {
	if len(actions) == 0 {
		var none A
		return none, false
	}

	// Calculate the ε probability of choosing any action at random
	numActions := len(actions)
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Share the remaining probability between the greedy actions
	best := p.store.Best(state, actions)
	for _, i := range best {
		actionProbabilities[i] += (1.0 - p.epsilon) / float64(len(best))
	}

	// Construct a categorical distribution over actions using action
	// probabilities and sample an action from it
	dist := distuv.NewCategorical(actionProbabilities, p.source)
	return actions[int(dist.Rand())], true
}
