package model

// actionGenerator enumerates the assignments the agent may choose from a schedule.
//
// Example:
//
//	generator := newActionGenerator(modelInput, newPredicateEvaluator(modelInput))
//
//	actions := generator.AvailableActions(schedule)
//	if len(actions) == 0 {
//		// No subject has quota left with a compatible, qualified teacher: the episode is over
//	}
type actionGenerator interface {
	// Returns every (subject, teacher) pair, in declaration order, such that the teacher is qualified for the subject, the subject's type and the teacher's degree are compatible and the subject is below its weekly quota
	AvailableActions(schedule *Schedule) []Assignment

	// Returns the number of times the subject occurs during the week
	SubjectCountInWeek(subject int, schedule *Schedule) int
}

func newActionGenerator(modelInput ModelInput, evaluator predicateEvaluator) actionGenerator {
	return &actionGeneratorImplementation{modelInput, evaluator}
}
