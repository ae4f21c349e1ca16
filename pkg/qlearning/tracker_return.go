package qlearning

// Return tracks the episodic return: the sum of the rewards seen in each
// episode.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn() *Return {
	return &Return{episodeReturns: make([]float64, 0)}
}

// Track accumulates the reward of a transition into the current episode's
// return
func (r *Return) Track(step Step) {
	r.currentReturn += step.Reward
}

// EndEpisode stores the current episode's return and starts a new one
func (r *Return) EndEpisode() {
	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0
}

// Data returns the return of every finished episode
func (r *Return) Data() []float64 {
	return r.episodeReturns
}
