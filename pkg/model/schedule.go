package model

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

const (
	Days    = 5
	Periods = 5 // Periods are numbered from 1 to Periods
)

var dayNames = [Days]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (day Day) String() string {
	if day < Monday || day > Friday {
		return "Unknown"
	}
	return dayNames[day]
}

// Unresolved marks an assignment field that could not be matched against the catalogue
const Unresolved = -1

// Assignment pairs a subject with the teacher teaching it (both are positions in the catalogue).
// It is also the action the agent chooses: where it is placed is decided when it is applied.
type Assignment struct {
	Subject int
	Teacher int
}

func (assignment Assignment) Resolved() bool {
	return assignment.Subject != Unresolved && assignment.Teacher != Unresolved
}

type Slot struct {
	Period     int
	Assignment Assignment
}

// Schedule holds at most one assignment per day and period. Each day keeps its slots in the
// order they were placed.
type Schedule struct {
	days [Days][]Slot
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// Place puts the assignment at the given day and period, replacing (in place) any assignment
// already there.
func (schedule *Schedule) Place(day Day, period int, assignment Assignment) {
	for i, slot := range schedule.days[day] {
		if slot.Period == period {
			schedule.days[day][i].Assignment = assignment
			return
		}
	}
	schedule.days[day] = append(schedule.days[day], Slot{Period: period, Assignment: assignment})
}

func (schedule *Schedule) At(day Day, period int) (Assignment, bool) {
	for _, slot := range schedule.days[day] {
		if slot.Period == period {
			return slot.Assignment, true
		}
	}
	return Assignment{}, false
}

// Slots returns the day's slots in placement order. The slice must not be modified.
func (schedule *Schedule) Slots(day Day) []Slot {
	return schedule.days[day]
}

// FreePeriods returns the unoccupied periods of the day in ascending order
func (schedule *Schedule) FreePeriods(day Day) []int {
	free := make([]int, 0, Periods)
	for period := 1; period <= Periods; period++ {
		if _, ok := schedule.At(day, period); !ok {
			free = append(free, period)
		}
	}
	return free
}

// Count returns how many times the subject occurs during the week
func (schedule *Schedule) Count(subject int) int {
	count := 0
	for day := 0; day < Days; day++ {
		for _, slot := range schedule.days[day] {
			if slot.Assignment.Subject == subject {
				count++
			}
		}
	}
	return count
}

func (schedule *Schedule) Filled() int {
	filled := 0
	for day := 0; day < Days; day++ {
		filled += len(schedule.days[day])
	}
	return filled
}
