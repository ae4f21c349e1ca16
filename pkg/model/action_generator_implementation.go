package model

type actionGeneratorImplementation struct {
	modelInput ModelInput
	evaluator  predicateEvaluator
}

func (generator *actionGeneratorImplementation) AvailableActions(schedule *Schedule) []Assignment {
	actions := make([]Assignment, 0)
	for subject := range generator.modelInput.Subjects {
		// Quota only depends on the subject, so it is checked once for all teachers
		if !generator.evaluator.BelowQuota(subject, schedule) {
			continue
		}

		for teacher := range generator.modelInput.Teachers {
			if generator.evaluator.Qualified(teacher, subject) && generator.evaluator.Compatible(subject, teacher) {
				actions = append(actions, Assignment{Subject: subject, Teacher: teacher})
			}
		}
	}
	return actions
}

func (generator *actionGeneratorImplementation) SubjectCountInWeek(subject int, schedule *Schedule) int {
	return schedule.Count(subject)
}
