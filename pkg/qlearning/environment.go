package qlearning

// Environment implements a simulated, episodic environment.
//
// The Environment keeps track of its current state. Actions returns the
// legal actions in that state, while ActionsFrom returns the legal actions
// in an arbitrary state, which is what a Learner needs to bootstrap from
// the next state of a transition.
type Environment[S comparable, A comparable] interface {
	// Reset starts a new episode and returns its first state
	Reset() S

	// Actions returns the legal actions in the current state
	Actions() []A

	// ActionsFrom returns the legal actions in state
	ActionsFrom(state S) []A

	// Step takes action in the current state and returns the next state
	// and the reward. If the action could not be applied, ok is false,
	// the episode is over and nothing was changed.
	Step(action A) (next S, reward float64, ok bool)
}
