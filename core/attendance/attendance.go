package attendance

import (
	"strings"
	"time"

	"github.com/trezcool/gradebook/core/roster"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate}

func (st Status) valid() bool {
	for _, s := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// ParseStatus accepts a status name or its first letter, in any case.
func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses {
		if s == string(st) || (len(s) == 1 && s[0] == st[0]) {
			return st, true
		}
	}
	return "", false
}

// Sheet is the attendance of one class on one day.
type Sheet struct {
	Class string
	Date  time.Time // truncated to the day

	students []roster.Student
	marks    map[string]Status
}

type Summary struct {
	Present  int `json:"present"`
	Absent   int `json:"absent"`
	Late     int `json:"late"`
	Unmarked int `json:"unmarked"`
	Total    int `json:"total"`
}

func NewSheet(class string, date time.Time, students []roster.Student) *Sheet {
	y, m, d := date.Date()
	return &Sheet{
		Class:    class,
		Date:     time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		students: students,
		marks:    make(map[string]Status),
	}
}

func (sh *Sheet) Students() []roster.Student {
	students := make([]roster.Student, len(sh.students))
	copy(students, sh.students)
	return students
}

// Mark sets a student's status. Unknown students or statuses are ignored.
func (sh *Sheet) Mark(studentID string, status Status) bool {
	if !status.valid() {
		return false
	}
	for _, s := range sh.students {
		if s.ID == studentID {
			sh.marks[studentID] = status
			return true
		}
	}
	return false
}

func (sh *Sheet) StatusOf(studentID string) (Status, bool) {
	st, ok := sh.marks[studentID]
	return st, ok
}

func (sh *Sheet) Summary() Summary {
	sum := Summary{Total: len(sh.students)}
	for _, st := range sh.marks {
		switch st {
		case StatusPresent:
			sum.Present++
		case StatusAbsent:
			sum.Absent++
		case StatusLate:
			sum.Late++
		}
	}
	sum.Unmarked = sum.Total - len(sh.marks)
	return sum
}

// PreviousDay returns an empty sheet for the same class on the day before.
func (sh *Sheet) PreviousDay() *Sheet {
	return NewSheet(sh.Class, sh.Date.AddDate(0, 0, -1), sh.students)
}

// NextDay returns an empty sheet for the same class on the day after.
func (sh *Sheet) NextDay() *Sheet {
	return NewSheet(sh.Class, sh.Date.AddDate(0, 0, 1), sh.students)
}
