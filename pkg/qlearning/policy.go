package qlearning

// Policy determines how an agent selects actions.
//
// SelectAction chooses one of the legal actions in state. If there are no
// legal actions the state is terminal, and SelectAction returns the zero
// action and false.
type Policy[S comparable, A comparable] interface {
	SelectAction(state S, actions []A) (A, bool)
}
