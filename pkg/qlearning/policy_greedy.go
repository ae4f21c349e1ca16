package qlearning

// Greedy implements a deterministic greedy policy over a ValueStore: the
// first action, in the order given, with the largest value is selected.
// Greedy never explores and is meant for evaluating a learned table.
type Greedy[S comparable, A comparable] struct {
	store *ValueStore[S, A]
}

// NewGreedy constructs a new Greedy policy reading from store
func NewGreedy[S comparable, A comparable](store *ValueStore[S, A]) *Greedy[S, A] {
	return &Greedy[S, A]{store: store}
}

// SelectAction selects the first action of maximal value
func (p *Greedy[S, A]) SelectAction(state S, actions []A) (A, bool) {
	best := p.store.Best(state, actions)
	if len(best) == 0 {
		var none A
		return none, false
	}
	return actions[best[0]], true
}
