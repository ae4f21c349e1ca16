package model

import (
	"github.com/samber/lo"
)

type stateCodecImplementation struct {
	modelInput ModelInput
}

func (codec *stateCodecImplementation) Encode(schedule *Schedule) State {
	var state State
	for day := 0; day < Days; day++ {
		for period := 1; period <= Periods; period++ {
			assignment, ok := schedule.At(Day(day), period)
			if !ok {
				continue
			}

			cell := Cell{Filled: true}
			if assignment.Subject != Unresolved {
				subject := codec.modelInput.Subjects[assignment.Subject]
				cell.Subject, cell.Type = subject.Name, subject.Type
			}
			if assignment.Teacher != Unresolved {
				cell.Degree = codec.modelInput.Teachers[assignment.Teacher].Degree
			}
			state[index(Day(day), period)] = cell
		}
	}
	return state
}

func (codec *stateCodecImplementation) Decode(state State) *Schedule {
	schedule := NewSchedule()
	for i, cell := range state {
		if !cell.Filled {
			continue
		}

		assignment := Assignment{Subject: Unresolved, Teacher: Unresolved}
		subject, ok := lo.Find(codec.modelInput.Subjects, func(subject Subject) bool {
			return subject.Name == cell.Subject && subject.Type == cell.Type
		})
		if ok {
			assignment.Subject = int(subject.Id)
			teacher, ok := lo.Find(codec.modelInput.Teachers, func(teacher Teacher) bool {
				return teacher.Degree == cell.Degree && teacher.Qualified(subject.Id)
			})
			if ok {
				assignment.Teacher = int(teacher.Id)
			}
		}

		day, period := attributes(i)
		schedule.Place(day, period, assignment)
	}
	return schedule
}

// Returns the position of a (day, period) slot inside a State
func index(day Day, period int) int {
	return int(day)*Periods + period - 1
}

// Returns the (day, period) slot stored at a position of a State
func attributes(index int) (Day, int) {
	return Day(index / Periods), index%Periods + 1
}
