package qlearning

// Online is an experiment that trains an agent online: every transition
// is learned from as soon as it is observed.
type Online[S comparable, A comparable] struct {
	env      Environment[S, A]
	policy   Policy[S, A]
	learner  *Learner[S, A]
	trackers []Tracker
	episodes int // Number of episodes run so far
}

// NewOnline creates and returns a new online experiment in which policy
// selects actions in env and learner learns from the resulting
// transitions. The trackers determine what data is recorded.
func NewOnline[S comparable, A comparable](env Environment[S, A], policy Policy[S, A],
	learner *Learner[S, A], t ...Tracker) *Online[S, A] {
	return &Online[S, A]{
		env:      env,
		policy:   policy,
		learner:  learner,
		trackers: t,
	}
}

// Episodes returns the number of episodes run so far
func (o *Online[S, A]) Episodes() int {
	return o.episodes
}

// RunEpisode runs a single episode and returns its number of steps and
// its return. The episode ends when no action is legal or when the
// environment cannot apply the selected action.
func (o *Online[S, A]) RunEpisode() (steps int, episodeReturn float64) {
	state := o.env.Reset()

	for {
		// Select action, stop once the state is terminal
		action, ok := o.policy.SelectAction(state, o.env.Actions())
		if !ok {
			break
		}

		// Step in the environment, stop if the action cannot be applied
		next, reward, ok := o.env.Step(action)
		if !ok {
			break
		}

		// Learn from the transition
		o.learner.Update(state, action, reward, next, o.env.ActionsFrom(next))
		o.track(Step{Episode: o.episodes, Number: steps, Reward: reward})

		steps++
		episodeReturn += reward
		state = next
	}

	o.endEpisode()
	o.episodes++
	return steps, episodeReturn
}

// track sends a transition to every Tracker
func (o *Online[S, A]) track(step Step) {
	for _, tracker := range o.trackers {
		tracker.Track(step)
	}
}

// endEpisode notifies every Tracker that the current episode is over
func (o *Online[S, A]) endEpisode() {
	for _, tracker := range o.trackers {
		tracker.EndEpisode()
	}
}
