package model

type predicateEvaluatorStandard struct {
	modelInput    ModelInput
	qualification [][]bool // Qualification matrix: qualification[teacher][subject] = true if and only if teacher is qualified to teach subject
}

func newPredicateEvaluator(modelInput ModelInput) predicateEvaluator {
	evaluator := predicateEvaluatorStandard{
		modelInput: modelInput,
	}

	evaluator.qualification = make([][]bool, len(modelInput.Teachers))
	for teacher := range modelInput.Teachers {
		evaluator.qualification[teacher] = make([]bool, len(modelInput.Subjects))
		for _, subject := range modelInput.Teachers[teacher].Subjects {
			evaluator.qualification[teacher][subject] = true
		}
	}

	return &evaluator
}

func (evaluator *predicateEvaluatorStandard) Qualified(teacher, subject int) bool {
	return evaluator.qualification[teacher][subject]
}

func (evaluator *predicateEvaluatorStandard) Compatible(subject, teacher int) bool {
	return compatible(evaluator.modelInput.Subjects[subject].Type, evaluator.modelInput.Teachers[teacher].Degree)
}

func (evaluator *predicateEvaluatorStandard) BelowQuota(subject int, schedule *Schedule) bool {
	return uint64(schedule.Count(subject)) < evaluator.modelInput.Subjects[subject].CountPerTerm
}

// Lectures are taught by lecturers, practices by assistants
func compatible(subjectType SubjectType, degree Degree) bool {
	switch subjectType {
	case Lecture:
		return degree == Lecturer
	case Practice:
		return degree == Assistant
	}
	return false
}
