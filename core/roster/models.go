package roster

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

// Statuses
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

var AllStatuses = []string{StatusActive, StatusInactive, StatusSuspended}

type Student struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Class           string    `json:"class"`
	AdmissionNumber string    `json:"admission_number"`
	Performance     int       `json:"performance"` // %
	Attendance      int       `json:"attendance"`  // %
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"` // UTC
}

func (s Student) IsActive() bool {
	return s.Status == StatusActive
}

// Initials returns the first letter of each part of the student's name, eg: "Ada Lovelace" -> "AL".
func (s Student) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(s.Name) {
		b.WriteString(strings.ToUpper(string([]rune(part)[0])))
	}
	return b.String()
}

// NewStudent contains information needed to add a Student to the roster.
type NewStudent struct {
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"omitempty,email"`
	Class           string `json:"class" validate:"required,classcode"`
	AdmissionNumber string `json:"admission_number" validate:"omitempty,alphanum"`
	Performance     int    `json:"performance" validate:"min=0,max=100"`
	Attendance      int    `json:"attendance" validate:"min=0,max=100"`
	Status          string `json:"status" validate:"omitempty,studentstatus"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Class = strings.ToUpper(core.CleanString(ns.Class))
	ns.AdmissionNumber = strings.ToUpper(core.CleanString(ns.AdmissionNumber))
	ns.Status = core.CleanString(ns.Status, true /* lower */)
	if ns.Status == "" {
		ns.Status = StatusActive
	}
	return validate.Struct(ns)
}

type QueryFilter struct {
	Search string
	Class  string
	Status string
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Class == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search, true /* lower */)
	qf.Class = strings.ToUpper(core.CleanString(qf.Class))
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match applies AND operation on available QueryFilter fields.
// Search does a case-insensitive match on one of Name, Email or AdmissionNumber.
func (qf *QueryFilter) Match(s Student) bool {
	if qf.Class != "" && s.Class != qf.Class {
		return false
	}
	if qf.Status != "" && s.Status != qf.Status {
		return false
	}
	if qf.Search != "" {
		return strings.Contains(strings.ToLower(s.Name), qf.Search) ||
			strings.Contains(strings.ToLower(s.Email), qf.Search) ||
			strings.Contains(strings.ToLower(s.AdmissionNumber), qf.Search)
	}
	return true
}
