package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every sample subject once on Monday, each with a teacher of the matching degree
func fullMonday() *Schedule {
	schedule := NewSchedule()
	schedule.Place(Monday, 1, Assignment{Subject: 0, Teacher: 0})
	schedule.Place(Monday, 2, Assignment{Subject: 1, Teacher: 0})
	schedule.Place(Monday, 3, Assignment{Subject: 2, Teacher: 1})
	schedule.Place(Monday, 4, Assignment{Subject: 3, Teacher: 1})
	schedule.Place(Monday, 5, Assignment{Subject: 4, Teacher: 2})
	return schedule
}

func TestRewardFullCoverage(t *testing.T) {
	rewards := NewRewardModel(SampleInput())

	breakdown := rewards.Breakdown(fullMonday())

	assert.Equal(t, RewardBreakdown{Gaps: 0, Qualification: 0, Coverage: CoverageBonus}, breakdown)
	assert.Equal(t, 250, rewards.Reward(fullMonday()))
}

func TestRewardEmptySchedule(t *testing.T) {
	rewards := NewRewardModel(SampleInput())
	assert.Equal(t, -5*MissingSubjectPenalty, rewards.Reward(NewSchedule()))
}

func TestRewardGaps(t *testing.T) {
	rewards := NewRewardModel(SampleInput())

	t.Run("Single gap", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.Place(Monday, 1, Assignment{Subject: 0, Teacher: 0})
		schedule.Place(Monday, 3, Assignment{Subject: 1, Teacher: 0})

		breakdown := rewards.Breakdown(schedule)

		assert.Equal(t, -GapPenalty, breakdown.Gaps)
		assert.Equal(t, -3*MissingSubjectPenalty, breakdown.Coverage)
		assert.Equal(t, -30-150, rewards.Reward(schedule))
	})

	t.Run("Gaps add up with the coverage bonus", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.Place(Monday, 1, Assignment{Subject: 0, Teacher: 0})
		schedule.Place(Monday, 5, Assignment{Subject: 1, Teacher: 0})
		schedule.Place(Tuesday, 2, Assignment{Subject: 2, Teacher: 1})
		schedule.Place(Tuesday, 4, Assignment{Subject: 3, Teacher: 1})
		schedule.Place(Wednesday, 3, Assignment{Subject: 4, Teacher: 2})

		assert.Equal(t, -2*GapPenalty+CoverageBonus, rewards.Reward(schedule))
	})

	t.Run("Gaps follow placement order", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.Place(Monday, 3, Assignment{Subject: 0, Teacher: 0})
		schedule.Place(Monday, 1, Assignment{Subject: 1, Teacher: 0})

		assert.Equal(t, 0, rewards.Breakdown(schedule).Gaps)
	})
}

func TestRewardQualification(t *testing.T) {
	rewards := NewRewardModel(SampleInput())

	//** Arrange
	schedule := fullMonday()
	schedule.Place(Tuesday, 1, Assignment{Subject: 0, Teacher: 1}) // Lecture taught by an assistant
	schedule.Place(Tuesday, 2, Assignment{Subject: 2, Teacher: 0}) // Practice taught by a lecturer
	schedule.Place(Tuesday, 3, Assignment{Subject: 2, Teacher: Unresolved})

	//** Act
	breakdown := rewards.Breakdown(schedule)

	//** Assert
	assert.Equal(t, -2*QualificationPenalty, breakdown.Qualification)
	assert.Equal(t, CoverageBonus, breakdown.Coverage)
	assert.Equal(t, 230, breakdown.Total())
}

func TestRewardUnresolvedSubjectIsNotCovered(t *testing.T) {
	rewards := NewRewardModel(SampleInput())

	schedule := NewSchedule()
	schedule.Place(Monday, 1, Assignment{Subject: Unresolved, Teacher: Unresolved})

	assert.Equal(t, -5*MissingSubjectPenalty, rewards.Reward(schedule))
}
