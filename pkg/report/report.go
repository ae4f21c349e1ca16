// Package report renders schedules for people and for other programs
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/TerrifyingAnt/Shedulae-AI-RL/pkg/model"
	"github.com/samber/lo"
)

const unresolved = "<unresolved>"

type Class struct {
	Period  int    `json:"period"`
	Subject string `json:"subject"`
	Type    string `json:"type"`
	Teacher string `json:"teacher"`
}

type DaySchedule struct {
	Day     string  `json:"day"`
	Classes []Class `json:"classes"`
}

type GroupSchedule struct {
	Group  string        `json:"group"`
	Course string        `json:"course"`
	Days   []DaySchedule `json:"days"`
	Reward int           `json:"reward"`
	Valid  bool          `json:"valid"`
}

// Build gathers the schedule of a group, day by day and period by period
func Build(input model.ModelInput, group uint64, schedule *model.Schedule, reward int, valid bool) GroupSchedule {
	groupName, courseName := unresolved, unresolved
	if group < uint64(len(input.Groups)) {
		groupName = input.Groups[group].Name
		courseName = input.Courses[input.Groups[group].Course].Name
	}

	days := make([]DaySchedule, 0, model.Days)
	for day := 0; day < model.Days; day++ {
		slots := slices.Clone(schedule.Slots(model.Day(day)))
		slices.SortFunc(slots, func(a, b model.Slot) int { return a.Period - b.Period })

		days = append(days, DaySchedule{
			Day: model.Day(day).String(),
			Classes: lo.Map(slots, func(slot model.Slot, _ int) Class {
				return class(input, slot)
			}),
		})
	}

	return GroupSchedule{
		Group:  groupName,
		Course: courseName,
		Days:   days,
		Reward: reward,
		Valid:  valid,
	}
}

// Text writes a human readable rendering of the schedule
func Text(w io.Writer, schedule GroupSchedule) error {
	if _, err := fmt.Fprintf(w, "Optimal schedule for %v (%v):\n", schedule.Group, schedule.Course); err != nil {
		return err
	}
	for _, day := range schedule.Days {
		if _, err := fmt.Fprintf(w, "%v:\n", day.Day); err != nil {
			return err
		}
		for _, class := range day.Classes {
			if _, err := fmt.Fprintf(w, "  Period %v: %v (%v) - %v\n", class.Period, class.Subject, class.Type, class.Teacher); err != nil {
				return err
			}
		}
	}
	return nil
}

func JSON(schedule GroupSchedule) ([]byte, error) {
	return json.MarshalIndent(schedule, "", "  ")
}

func class(input model.ModelInput, slot model.Slot) Class {
	class := Class{Period: slot.Period, Subject: unresolved, Type: unresolved, Teacher: unresolved}
	if slot.Assignment.Subject != model.Unresolved {
		subject := input.Subjects[slot.Assignment.Subject]
		class.Subject, class.Type = subject.Name, string(subject.Type)
	}
	if slot.Assignment.Teacher != model.Unresolved {
		class.Teacher = input.Teachers[slot.Assignment.Teacher].Name
	}
	return class
}
