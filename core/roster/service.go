package roster

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/gradebook/core"
)

var (
	// errors
	ErrNotFound        = errors.New("student not found")
	ErrAdmissionExists = errors.New("a student with this admission number already exists")

	// minimum similarity for Closest to suggest a name
	closestMinRatio = .6
)

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		GetStudentByAdmissionNumber(number string) (Student, error)
		// FilterStudents returns the students matching QueryFilter.Match, in no particular order.
		FilterStudents(filter QueryFilter) ([]Student, error)
		DeleteStudentsByID(ids ...string) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(svc.validate); err != nil {
		return Student{}, err
	}
	if ns.AdmissionNumber != "" {
		if _, err := svc.repo.GetStudentByAdmissionNumber(ns.AdmissionNumber); err == nil {
			return Student{}, core.NewValidationError(
				ErrAdmissionExists,
				core.FieldError{Field: "admission_number", Error: ErrAdmissionExists.Error()},
			)
		} else if errors.Cause(err) != ErrNotFound {
			return Student{}, errors.Wrap(err, "checking admission number")
		}
	}

	s := Student{
		Name:            ns.Name,
		Email:           ns.Email,
		Class:           ns.Class,
		AdmissionNumber: ns.AdmissionNumber,
		Performance:     ns.Performance,
		Attendance:      ns.Attendance,
		Status:          ns.Status,
		CreatedAt:       time.Now().UTC(),
	}
	return svc.repo.CreateStudent(s)
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(core.CleanString(id))
}

// Query filters then orders the roster. Without orderings students are sorted by name.
func (svc *Service) Query(filter QueryFilter, orderings ...core.Ordering) ([]Student, error) {
	filter.Clean()

	var (
		students []Student
		err      error
	)
	if filter.IsEmpty() {
		students, err = svc.repo.QueryAllStudents()
	} else {
		students, err = svc.repo.FilterStudents(filter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	if len(orderings) == 0 {
		orderings = []core.Ordering{{Field: "name", Ascending: true}}
	}
	Sort(students, orderings)
	return students, nil
}

// Class returns the active students of a class sorted by name.
func (svc *Service) Class(class string) ([]Student, error) {
	return svc.Query(QueryFilter{Class: class, Status: StatusActive})
}

// Classes lists the distinct class codes on the roster.
func (svc *Service) Classes() ([]string, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	seen := make(map[string]bool)
	classes := make([]string, 0)
	for _, s := range students {
		if !seen[s.Class] {
			seen[s.Class] = true
			classes = append(classes, s.Class)
		}
	}
	sort.Strings(classes)
	return classes, nil
}

func (svc *Service) CountByStatus() (map[string]int, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	counts := make(map[string]int, len(AllStatuses))
	for _, status := range AllStatuses {
		counts[status] = 0
	}
	for _, s := range students {
		counts[s.Status]++
	}
	return counts, nil
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteStudentsByID(ids...)
}

// Sort orders students in place. Unknown fields are ignored.
func Sort(students []Student, orderings []core.Ordering) {
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		for _, ord := range orderings {
			var cmp int
			switch ord.Field {
			case "name":
				cmp = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			case "class":
				cmp = strings.Compare(a.Class, b.Class)
			case "performance":
				cmp = a.Performance - b.Performance
			case "attendance":
				cmp = a.Attendance - b.Attendance
			case "created_at":
				switch {
				case a.CreatedAt.Before(b.CreatedAt):
					cmp = -1
				case a.CreatedAt.After(b.CreatedAt):
					cmp = 1
				}
			}
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

// Closest returns the student whose name is the most similar to name, if any is similar enough.
func Closest(name string, students []Student) (Student, bool) {
	name = core.CleanString(name, true /* lower */)
	if name == "" {
		return Student{}, false
	}

	var (
		best      Student
		bestRatio float64
	)
	for _, s := range students {
		ratio := difflib.NewMatcher(
			strings.Split(name, ""),
			strings.Split(strings.ToLower(s.Name), ""),
		).Ratio()
		if ratio > bestRatio {
			best, bestRatio = s, ratio
		}
	}
	if bestRatio < closestMinRatio {
		return Student{}, false
	}
	return best, true
}
