package qlearning

import (
	"gonum.org/v1/gonum/stat"
)

// Step describes a single transition of an episode as seen by a Tracker
type Step struct {
	Episode int
	Number  int // Position of the transition within its episode
	Reward  float64
}

// Tracker keeps track of experiment data. Track is called for every
// transition and EndEpisode once an episode has finished, even if it
// finished without any transition.
type Tracker interface {
	Track(step Step)
	EndEpisode()

	// Data returns one value per finished episode
	Data() []float64
}

// Summary returns the mean and standard deviation of the last window
// values of data, or of all of them if window is not positive or larger
// than the data
func Summary(data []float64, window int) (mean, std float64) {
	if len(data) == 0 {
		return 0, 0
	}
	if window > 0 && window < len(data) {
		data = data[len(data)-window:]
	}
	if len(data) == 1 {
		return data[0], 0
	}
	return stat.MeanStdDev(data, nil)
}
