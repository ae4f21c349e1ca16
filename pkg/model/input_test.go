package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFromJson(t *testing.T) {
	//** Act
	input, err := InputFromJson("testdata/catalogue.json")

	//** Assert
	require.Nil(t, err)
	assert.Equal(t, []Subject{
		{Id: 0, Name: "Math", CountPerTerm: 2, Type: Lecture},
		{Id: 1, Name: "Biology", CountPerTerm: 1, Type: Practice},
	}, input.Subjects)
	assert.Equal(t, []Teacher{
		{Id: 0, Name: "Ada", Degree: Lecturer, Subjects: []uint64{0}},
		{Id: 1, Name: "Bob", Degree: Assistant, Subjects: []uint64{1}},
	}, input.Teachers)
	assert.Equal(t, []uint64{0, 1}, input.Courses[0].Subjects)
	assert.Equal(t, "Group 1", input.Groups[0].Name)
	assert.Equal(t, ComputerLab, input.Classrooms["Computer Lab 1"])
	assert.Equal(t, []SubjectType{Lecture, Practice}, input.SubjectTypes)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson("testdata/missing.json")
	assert.NotNil(t, err)
}

func TestProcessRawInput(t *testing.T) {
	t.Run("Sample input", func(t *testing.T) {
		input, err := ProcessRawInput(SampleRawInput())

		assert.Nil(t, err)
		assert.Len(t, input.Subjects, 5)
		assert.Len(t, input.Teachers, 3)
		assert.True(t, input.Teachers[2].Qualified(4))
		assert.False(t, input.Teachers[2].Qualified(3))
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		//** Arrange
		duplicateSubject := SampleRawInput()
		duplicateSubject.Subjects[1].Id = 0

		unknownType := SampleRawInput()
		unknownType.Subjects[0].Type = "seminar"

		unknownDegree := SampleRawInput()
		unknownDegree.Teachers[0].Degree = "professor"

		unknownTeacherSubject := SampleRawInput()
		unknownTeacherSubject.Teachers[1].Subjects = []uint64{2, 42}

		unknownCourseSubject := SampleRawInput()
		unknownCourseSubject.Courses[0].Subjects = []uint64{42}

		unknownCourse := SampleRawInput()
		unknownCourse.Groups[0].Course = 3

		for _, rawInput := range []RawModelInput{duplicateSubject, unknownType, unknownDegree, unknownTeacherSubject, unknownCourseSubject, unknownCourse} {
			//** Act
			_, err := ProcessRawInput(rawInput)

			//** Assert
			assert.NotNil(t, err)
		}
	})

	t.Run("Duplicate subjects are kept in declaration order", func(t *testing.T) {
		rawInput := SampleRawInput()
		rawInput.Subjects = append(rawInput.Subjects, RawSubject{Id: 5, Name: "Math", CountPerTerm: 1, Type: Lecture})

		input, err := ProcessRawInput(rawInput)

		assert.Nil(t, err)
		assert.Equal(t, uint64(5), input.Subjects[5].Id)
		assert.Equal(t, "Math", input.Subjects[5].Name)
	})
}
