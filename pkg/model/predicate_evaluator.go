package model

type predicateEvaluator interface {
	// Checks whether the teacher is qualified to teach the subject
	Qualified(teacher, subject int) bool

	// Checks whether the subject's type matches the teacher's degree (i.e. lectures are taught by lecturers and practices by assistants)
	Compatible(subject, teacher int) bool

	// Checks whether the subject occurs in the schedule fewer times than its weekly quota
	BelowQuota(subject int, schedule *Schedule) bool
}
