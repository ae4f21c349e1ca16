package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributes(t *testing.T) {
	for i := 0; i < Days*Periods; i++ {
		day, period := attributes(i)
		assert.Equal(t, i, index(day, period))
		assert.True(t, period >= 1 && period <= Periods)
	}
	assert.Equal(t, 0, index(Monday, 1))
	assert.Equal(t, Days*Periods-1, index(Friday, Periods))
}

func TestEncodeDecodeEmpty(t *testing.T) {
	codec := newStateCodec(SampleInput())

	state := codec.Encode(NewSchedule())
	decoded := codec.Decode(state)

	assert.Equal(t, State{}, state)
	assert.Equal(t, 0, decoded.Filled())
	assert.Equal(t, NewSchedule(), decoded)
}

func TestEncodeDecode(t *testing.T) {
	//** Arrange
	input := SampleInput()
	codec := newStateCodec(input)
	schedule := NewSchedule()
	schedule.Place(Tuesday, 4, Assignment{Subject: 4, Teacher: 2}) // Chemistry by the second assistant
	schedule.Place(Tuesday, 2, Assignment{Subject: 0, Teacher: 0}) // Math by the lecturer
	schedule.Place(Friday, 1, Assignment{Subject: 3, Teacher: 1})  // Computer Science by the first assistant

	//** Act
	state := codec.Encode(schedule)
	decoded := codec.Decode(state)

	//** Assert
	assert.Equal(t, Cell{Filled: true, Subject: "Math", Type: Lecture, Degree: Lecturer}, state[index(Tuesday, 2)])
	assert.Equal(t, Cell{Filled: true, Subject: "Chemistry", Type: Practice, Degree: Assistant}, state[index(Tuesday, 4)])
	assert.False(t, state[index(Tuesday, 3)].Filled)

	// Decoded periods are placed in ascending order
	assert.Equal(t, []Slot{
		{Period: 2, Assignment: Assignment{Subject: 0, Teacher: 0}},
		{Period: 4, Assignment: Assignment{Subject: 4, Teacher: 2}},
	}, decoded.Slots(Tuesday))
	assert.Equal(t, state, codec.Encode(decoded))
}

func TestDecodeFirstMatchWins(t *testing.T) {
	//** Arrange
	rawInput := SampleRawInput()
	// A second lecturer qualified for Math and a second Math lecture
	rawInput.Teachers = append(rawInput.Teachers, RawTeacher{Name: "3", Degree: Lecturer, Subjects: []uint64{0, 5}})
	rawInput.Subjects = append(rawInput.Subjects, RawSubject{Id: 5, Name: "Math", CountPerTerm: 2, Type: Lecture})
	input, err := ProcessRawInput(rawInput)
	assert.Nil(t, err)
	codec := newStateCodec(input)

	schedule := NewSchedule()
	schedule.Place(Monday, 1, Assignment{Subject: 5, Teacher: 3})

	//** Act
	decoded := codec.Decode(codec.Encode(schedule))

	//** Assert
	assignment, ok := decoded.At(Monday, 1)
	assert.True(t, ok)
	assert.Equal(t, Assignment{Subject: 0, Teacher: 0}, assignment)
	assert.Equal(t, codec.Encode(schedule), codec.Encode(decoded))
}

func TestDecodeUnresolved(t *testing.T) {
	codec := newStateCodec(SampleInput())

	var state State
	state[index(Monday, 1)] = Cell{Filled: true, Subject: "History", Type: Lecture, Degree: Lecturer}
	state[index(Monday, 2)] = Cell{Filled: true, Subject: "Math", Type: Lecture, Degree: Assistant}

	decoded := codec.Decode(state)

	unknownSubject, _ := decoded.At(Monday, 1)
	unknownTeacher, _ := decoded.At(Monday, 2)
	assert.Equal(t, Assignment{Subject: Unresolved, Teacher: Unresolved}, unknownSubject)
	assert.Equal(t, Assignment{Subject: 0, Teacher: Unresolved}, unknownTeacher)
	assert.False(t, unknownTeacher.Resolved())

	// Unresolved slots can still be encoded
	reencoded := codec.Encode(decoded)
	assert.True(t, reencoded[index(Monday, 1)].Filled)
	assert.Equal(t, Cell{Filled: true, Subject: "Math", Type: Lecture}, reencoded[index(Monday, 2)])
}
