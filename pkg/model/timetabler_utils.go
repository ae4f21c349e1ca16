package model

import (
	"fmt"

	"golang.org/x/exp/rand"
)

func verify(schedule *Schedule, modelInput ModelInput) bool {
	evaluator := newPredicateEvaluator(modelInput)

	for day := 0; day < Days; day++ {
		seen := make(map[int]bool)
		for _, slot := range schedule.Slots(Day(day)) {
			subject, teacher := slot.Assignment.Subject, slot.Assignment.Teacher
			// Check that:
			// - Period lies within the day
			// - Period is not used twice
			// - Subject and teacher were resolved against the catalogue
			// - Teacher is qualified to teach the subject
			// - Teacher's degree is compatible with the subject's type
			if slot.Period < 1 || slot.Period > Periods ||
				seen[slot.Period] ||
				!slot.Assignment.Resolved() ||
				!evaluator.Qualified(teacher, subject) ||
				!evaluator.Compatible(subject, teacher) {
				return false
			}
			seen[slot.Period] = true
		}
	}

	// Check that no subject exceeds its weekly quota
	for _, subject := range modelInput.Subjects {
		if uint64(schedule.Count(int(subject.Id))) > subject.CountPerTerm {
			return false
		}
	}
	return true
}

// Picks a day uniformly at random and then one of its free periods. It fails if the chosen day is full
func randomFreeSlot(random *rand.Rand, schedule *Schedule) (Day, int, bool) {
	day := Day(random.Intn(Days))
	free := schedule.FreePeriods(day)
	if len(free) == 0 {
		return day, 0, false
	}
	return day, free[random.Intn(len(free))], true
}

// Fills a schedule by repeatedly asking choose for an assignment and placing it at a random free slot,
// until no assignment is chosen or the random day is full
func rollout(random *rand.Rand, codec stateCodec, generator actionGenerator, choose func(state State, actions []Assignment) (Assignment, bool)) *Schedule {
	schedule := NewSchedule()
	for {
		action, ok := choose(codec.Encode(schedule), generator.AvailableActions(schedule))
		if !ok {
			break
		}

		day, period, ok := randomFreeSlot(random, schedule)
		if !ok {
			break
		}
		schedule.Place(day, period, action)
	}
	return schedule
}

func checkGroup(group uint64, modelInput ModelInput) error {
	if group >= uint64(len(modelInput.Groups)) {
		return fmt.Errorf("unknown group %d: input has %d groups", group, len(modelInput.Groups))
	}
	return nil
}
