package model

// Cell is the projection of a single slot kept by a State. It records the subject's name and
// type and the teacher's degree, not which catalogue entries they came from.
type Cell struct {
	Filled  bool
	Subject string
	Type    SubjectType
	Degree  Degree
}

// State is a lossy, comparable snapshot of a Schedule: Days*Periods cells in day-major order,
// periods ascending within each day.
type State [Days * Periods]Cell

// stateCodec interface is designed to translate a schedule into its state and vice versa
type stateCodec interface {
	// Returns the state of the schedule
	Encode(schedule *Schedule) State
	// Returns a schedule reconstructed from the state. Subjects and teachers are matched in
	// declaration order and the first match wins; a slot without a match holds Unresolved
	Decode(state State) *Schedule
}

func newStateCodec(modelInput ModelInput) stateCodec {
	return &stateCodecImplementation{
		modelInput: modelInput,
	}
}
