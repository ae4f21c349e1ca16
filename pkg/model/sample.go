package model

import "log"

// SampleRawInput returns a small catalogue of five subjects, one lecturer and two assistants,
// taught to a single group
func SampleRawInput() RawModelInput {
	return RawModelInput{
		Subjects: []RawSubject{
			{Id: 0, Name: "Math", CountPerTerm: 6, Type: Lecture},
			{Id: 1, Name: "Physics", CountPerTerm: 4, Type: Lecture},
			{Id: 2, Name: "Biology", CountPerTerm: 6, Type: Practice},
			{Id: 3, Name: "Computer Science", CountPerTerm: 8, Type: Practice},
			{Id: 4, Name: "Chemistry", CountPerTerm: 8, Type: Practice},
		},
		Teachers: []RawTeacher{
			{Name: "1", Degree: Lecturer, Subjects: []uint64{0, 1}},
			{Name: "2", Degree: Assistant, Subjects: []uint64{2, 3}},
			{Name: "2", Degree: Assistant, Subjects: []uint64{4}},
		},
		Courses: []RawCourse{
			{Number: 1, Name: "Course 1", Subjects: []uint64{0, 1, 2, 3, 4}},
		},
		Groups: []RawGroup{
			{Name: "Group 1", Course: 0},
		},
		Classrooms: map[string]ClassroomType{
			"Lecture Hall 1": LectureHall,
			"Lecture Hall 2": LectureHall,
			"Computer Lab 1": ComputerLab,
			"Computer Lab 2": ComputerLab,
			"Lecture Hall 3": LectureHall,
			"Lecture Hall 4": LectureHall,
			"Computer Lab 3": ComputerLab,
			"Computer Lab 4": ComputerLab,
		},
		SubjectTypes: []SubjectType{Lecture, Practice},
	}
}

func SampleInput() ModelInput {
	input, err := ProcessRawInput(SampleRawInput())
	if err != nil {
		log.Panicf("sample input is invalid: %v", err)
	}
	return input
}
