package model

import "github.com/samber/lo"

const (
	GapPenalty            = 30  // Per gap of more than one period between consecutive classes of a day
	QualificationPenalty  = 10  // Per class whose teacher's degree does not match the subject's type
	MissingSubjectPenalty = 50  // Per catalogue subject absent from the schedule
	CoverageBonus         = 250 // Granted once every catalogue subject is scheduled
)

// RewardBreakdown holds the terms a reward is made of
type RewardBreakdown struct {
	Gaps          int
	Qualification int
	Coverage      int
}

func (breakdown RewardBreakdown) Total() int {
	return breakdown.Gaps + breakdown.Qualification + breakdown.Coverage
}

// RewardModel scores a schedule after an assignment has been placed in it. Only the resulting
// schedule is taken into account.
type RewardModel struct {
	modelInput ModelInput
}

func NewRewardModel(modelInput ModelInput) *RewardModel {
	return &RewardModel{modelInput: modelInput}
}

func (model *RewardModel) Reward(schedule *Schedule) int {
	return model.Breakdown(schedule).Total()
}

func (model *RewardModel) Breakdown(schedule *Schedule) RewardBreakdown {
	return RewardBreakdown{
		Gaps:          model.gaps(schedule),
		Qualification: model.qualification(schedule),
		Coverage:      model.coverage(schedule),
	}
}

// Days are traversed in placement order, so a gap is only seen between a slot and the slot
// placed right before it
func (model *RewardModel) gaps(schedule *Schedule) int {
	reward := 0
	for day := 0; day < Days; day++ {
		lastPeriod := 0
		for _, slot := range schedule.Slots(Day(day)) {
			if lastPeriod != 0 && slot.Period-lastPeriod > 1 {
				reward -= GapPenalty
			}
			lastPeriod = slot.Period
		}
	}
	return reward
}

func (model *RewardModel) qualification(schedule *Schedule) int {
	reward := 0
	for day := 0; day < Days; day++ {
		for _, slot := range schedule.Slots(Day(day)) {
			if !slot.Assignment.Resolved() {
				continue
			}

			subject := model.modelInput.Subjects[slot.Assignment.Subject]
			teacher := model.modelInput.Teachers[slot.Assignment.Teacher]
			if subject.Type == Lecture && teacher.Degree != Lecturer {
				reward -= QualificationPenalty
			} else if subject.Type == Practice && teacher.Degree == Lecturer {
				reward -= QualificationPenalty
			}
		}
	}
	return reward
}

func (model *RewardModel) coverage(schedule *Schedule) int {
	scheduled := make(map[int]bool)
	for day := 0; day < Days; day++ {
		for _, slot := range schedule.Slots(Day(day)) {
			if slot.Assignment.Subject != Unresolved {
				scheduled[slot.Assignment.Subject] = true
			}
		}
	}

	missing := lo.CountBy(model.modelInput.Subjects, func(subject Subject) bool {
		return !scheduled[int(subject.Id)]
	})
	if missing > 0 {
		return -MissingSubjectPenalty * missing
	}
	return CoverageBonus
}
