package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type SubjectType string

const (
	Lecture  SubjectType = "lecture"
	Practice SubjectType = "practice"
)

type Degree string

const (
	Lecturer  Degree = "lecturer"
	Assistant Degree = "assistant"
)

// ClassroomType is carried through the input for completeness; placement ignores it.
type ClassroomType string

const (
	LectureHall ClassroomType = "lecture_hall"
	ComputerLab ClassroomType = "computer_lab"
)

type RawSubject struct {
	Id           uint64
	Name         string
	CountPerTerm uint64
	Type         SubjectType
}

type RawTeacher struct {
	Name     string
	Degree   Degree
	Subjects []uint64
}

type RawCourse struct {
	Number   uint64
	Name     string
	Subjects []uint64
}

type RawGroup struct {
	Name   string
	Course uint64
}

type RawModelInput struct {
	Subjects     []RawSubject
	Teachers     []RawTeacher
	Courses      []RawCourse
	Groups       []RawGroup
	Classrooms   map[string]ClassroomType
	SubjectTypes []SubjectType
}

type Subject struct {
	Id           uint64
	Name         string
	CountPerTerm uint64
	Type         SubjectType
}

type Teacher struct {
	Id       uint64
	Name     string
	Degree   Degree
	Subjects []uint64 // Subjects the teacher is qualified to teach
}

type Course struct {
	Id       uint64
	Number   uint64
	Name     string
	Subjects []uint64
}

type Group struct {
	Id     uint64
	Name   string
	Course uint64
}

// ModelInput is the catalogue the timetablers work on. Every Id equals the entity's position
// in its slice, and every reference between entities is such a position.
type ModelInput struct {
	Subjects     []Subject
	Teachers     []Teacher
	Courses      []Course
	Groups       []Group
	Classrooms   map[string]ClassroomType
	SubjectTypes []SubjectType
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	input := ModelInput{
		Subjects:     make([]Subject, 0, len(rawInput.Subjects)),
		Teachers:     make([]Teacher, 0, len(rawInput.Teachers)),
		Courses:      make([]Course, 0, len(rawInput.Courses)),
		Groups:       make([]Group, 0, len(rawInput.Groups)),
		Classrooms:   rawInput.Classrooms,
		SubjectTypes: rawInput.SubjectTypes,
	}

	//** Manage subjects
	// Raw ids are mapped onto positions so that references can index the slice directly
	positions := make(map[uint64]uint64, len(rawInput.Subjects))
	for i, rawSubject := range rawInput.Subjects {
		if _, ok := positions[rawSubject.Id]; ok {
			return ModelInput{}, fmt.Errorf("duplicate subject id %d (\"%v\")", rawSubject.Id, rawSubject.Name)
		}
		if rawSubject.Type != Lecture && rawSubject.Type != Practice {
			return ModelInput{}, fmt.Errorf("subject \"%v\" has an unknown type \"%v\"", rawSubject.Name, rawSubject.Type)
		}
		positions[rawSubject.Id] = uint64(i)

		input.Subjects = append(input.Subjects, Subject{
			Id:           uint64(i),
			Name:         rawSubject.Name,
			CountPerTerm: rawSubject.CountPerTerm,
			Type:         rawSubject.Type,
		})
	}

	resolve := func(owner string, ids []uint64) ([]uint64, error) {
		var missing uint64
		if lo.SomeBy(ids, func(id uint64) bool {
			_, ok := positions[id]
			missing = id
			return !ok
		}) {
			return nil, fmt.Errorf("%v references an unknown subject id %d", owner, missing)
		}
		return lo.Map(ids, func(id uint64, _ int) uint64 { return positions[id] }), nil
	}

	//** Manage teachers
	for i, rawTeacher := range rawInput.Teachers {
		if rawTeacher.Degree != Lecturer && rawTeacher.Degree != Assistant {
			return ModelInput{}, fmt.Errorf("teacher \"%v\" has an unknown degree \"%v\"", rawTeacher.Name, rawTeacher.Degree)
		}
		subjects, err := resolve(fmt.Sprintf("teacher \"%v\"", rawTeacher.Name), rawTeacher.Subjects)
		if err != nil {
			return ModelInput{}, err
		}

		input.Teachers = append(input.Teachers, Teacher{
			Id:       uint64(i),
			Name:     rawTeacher.Name,
			Degree:   rawTeacher.Degree,
			Subjects: lo.Uniq(subjects),
		})
	}

	//** Manage courses
	for i, rawCourse := range rawInput.Courses {
		subjects, err := resolve(fmt.Sprintf("course \"%v\"", rawCourse.Name), rawCourse.Subjects)
		if err != nil {
			return ModelInput{}, err
		}

		input.Courses = append(input.Courses, Course{
			Id:       uint64(i),
			Number:   rawCourse.Number,
			Name:     rawCourse.Name,
			Subjects: subjects,
		})
	}

	//** Manage groups
	for i, rawGroup := range rawInput.Groups {
		if rawGroup.Course >= uint64(len(input.Courses)) {
			return ModelInput{}, fmt.Errorf("group \"%v\" references an unknown course %d", rawGroup.Name, rawGroup.Course)
		}

		input.Groups = append(input.Groups, Group{
			Id:     uint64(i),
			Name:   rawGroup.Name,
			Course: rawGroup.Course,
		})
	}

	// Both subject types are available unless the input restricts them
	if len(input.SubjectTypes) == 0 {
		input.SubjectTypes = []SubjectType{Lecture, Practice}
	}
	if input.Classrooms == nil {
		input.Classrooms = make(map[string]ClassroomType)
	}

	return input, nil
}

// Qualified reports whether the teacher is qualified to teach the subject.
func (teacher Teacher) Qualified(subject uint64) bool {
	return slices.Contains(teacher.Subjects, subject)
}
