package grade

import (
	"strings"

	"github.com/trezcool/gradebook/core/roster"
)

// Sheet is one grade entry view: an assignment for a class roster, backed by its own Store.
type Sheet struct {
	Assignment string
	Class      string
	Subject    Subject

	students []roster.Student
	store    *Store
}

// Row is a line of the entry table. Score, Percentage and Band are unset until a score is recorded.
type Row struct {
	Student    roster.Student `json:"student"`
	Score      *int           `json:"score"`
	Percentage *int           `json:"percentage"`
	Band       Band           `json:"band,omitempty"`
}

func newSheet(ns NewSheet, students []roster.Student) *Sheet {
	subject, _ := SubjectByID(ns.Subject)
	return &Sheet{
		Assignment: ns.Assignment,
		Class:      ns.Class,
		Subject:    subject,
		students:   students,
		store:      NewStore(ns.OutOf),
	}
}

func (sh *Sheet) Store() *Store { return sh.store }

func (sh *Sheet) Students() []roster.Student {
	students := make([]roster.Student, len(sh.students))
	copy(students, sh.students)
	return students
}

// Lookup finds a student of the sheet by ID, admission number or full name (case-insensitive).
func (sh *Sheet) Lookup(key string) (roster.Student, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return roster.Student{}, false
	}
	for _, s := range sh.students {
		if s.ID == key ||
			(s.AdmissionNumber != "" && strings.EqualFold(s.AdmissionNumber, key)) ||
			strings.EqualFold(s.Name, key) {
			return s, true
		}
	}
	return roster.Student{}, false
}

func (sh *Sheet) onRoster(studentID string) bool {
	for _, s := range sh.students {
		if s.ID == studentID {
			return true
		}
	}
	return false
}

// SetScore records a score for a student of the sheet; see Store.SetScore.
// Students outside the roster are ignored.
func (sh *Sheet) SetScore(studentID, raw string) bool {
	if !sh.onRoster(studentID) {
		return false
	}
	return sh.store.SetScore(studentID, raw)
}

func (sh *Sheet) SetOutOf(newMax int) bool { return sh.store.SetOutOf(newMax) }

func (sh *Sheet) ClearAll() { sh.store.ClearAll() }

func (sh *Sheet) Rows() []Row {
	rows := make([]Row, 0, len(sh.students))
	for _, s := range sh.students {
		row := Row{Student: s}
		if score, ok := sh.store.Score(s.ID); ok {
			pct, _ := PercentageFor(sh.store, s.ID)
			row.Score = &score
			row.Percentage = &pct
			row.Band = BandFor(percentage(score, sh.store.OutOf()))
		}
		rows = append(rows, row)
	}
	return rows
}

func (sh *Sheet) Summary() Summary {
	return Summarize(sh.store, len(sh.students))
}
