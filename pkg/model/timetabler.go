package model

type Timetabler interface {
	Train(episodes int) TrainingStats

	Build(group uint64) (*Schedule, error)

	Verify(schedule *Schedule) bool
}

// TrainingStats summarizes a call to Train. Returns and lengths are averaged over the last
// episodes of the call (see QLearningConfig.SummaryWindow).
type TrainingStats struct {
	Episodes   int
	MeanReturn float64
	StdReturn  float64
	MeanLength float64
	Entries    int // (state, action) pairs in the value store
	States     int // Distinct states in the value store
}
