package grade

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Subjects = []Subject{
	{ID: "math", Name: "Mathematics"},
	{ID: "sci", Name: "Science"},
	{ID: "eng", Name: "English"},
	{ID: "fre", Name: "French"},
	{ID: "hist", Name: "History"},
	{ID: "geo", Name: "Geography"},
}

func SubjectByID(id string) (Subject, bool) {
	for _, s := range Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// NewSheet contains information needed to open a grade entry sheet.
type NewSheet struct {
	Assignment string `json:"assignment" validate:"required,notblank"`
	Class      string `json:"class" validate:"required,classcode"`
	Subject    string `json:"subject" validate:"required,subject"`
	OutOf      int    `json:"out_of" validate:"min=1"`
}

func (ns *NewSheet) Validate(validate *validator.Validate) error {
	ns.Assignment = core.CleanString(ns.Assignment)
	ns.Class = strings.ToUpper(core.CleanString(ns.Class))
	ns.Subject = core.CleanString(ns.Subject, true /* lower */)
	return validate.Struct(ns)
}

// Receipt acknowledges a saved sheet.
type Receipt struct {
	ID         string    `json:"id"`
	Assignment string    `json:"assignment"`
	Class      string    `json:"class"`
	Subject    string    `json:"subject"`
	Count      int       `json:"count"`
	SavedAt    time.Time `json:"saved_at"` // UTC
}

func (r Receipt) Message() string {
	if r.Count == 1 {
		return fmt.Sprintf("1 grade for %s has been recorded.", r.Assignment)
	}
	return fmt.Sprintf("%d grades for %s have been recorded.", r.Count, r.Assignment)
}

// Summary is the derived statistics shown next to the entry sheet.
type Summary struct {
	OutOf             int          `json:"out_of"`
	Average           float64      `json:"average"`
	AveragePercentage *int         `json:"average_percentage"` // nil when no grades entered
	Graded            int          `json:"graded"`
	Total             int          `json:"total"`
	Completion        int          `json:"completion"`
	Distribution      Distribution `json:"distribution"`
}

func Summarize(s *Store, totalStudents int) Summary {
	sum := Summary{
		OutOf:        s.OutOf(),
		Average:      ClassAverage(s),
		Graded:       s.Len(),
		Total:        totalStudents,
		Completion:   CompletionPercentage(s, totalStudents),
		Distribution: ScoreDistribution(s),
	}
	if pct, ok := AveragePercentage(s); ok {
		sum.AveragePercentage = &pct
	}
	return sum
}
