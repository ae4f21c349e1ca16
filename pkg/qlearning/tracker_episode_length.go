package qlearning

// EpisodeLength tracks the number of transitions in each episode
type EpisodeLength struct {
	currentLength  int
	episodeLengths []float64
}

// NewEpisodeLength creates and returns a new *EpisodeLength Tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{episodeLengths: make([]float64, 0)}
}

func (e *EpisodeLength) Track(Step) {
	e.currentLength++
}

func (e *EpisodeLength) EndEpisode() {
	e.episodeLengths = append(e.episodeLengths, float64(e.currentLength))
	e.currentLength = 0
}

// Data returns the length of every finished episode
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}
