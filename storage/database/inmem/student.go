package inmemdb

import (
	"github.com/google/uuid"

	"github.com/trezcool/gradebook/core/roster"
)

type studentRepository struct {
	db *studentTable
}

var _ roster.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) roster.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []roster.Student {
	students := make([]roster.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	return students
}

func (repo *studentRepository) CreateStudent(s roster.Student) (roster.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]roster.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (roster.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return roster.Student{}, roster.ErrNotFound
}

func (repo *studentRepository) GetStudentByAdmissionNumber(number string) (roster.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, s := range repo.db.table {
		if s.AdmissionNumber == number {
			return *s, nil
		}
	}
	return roster.Student{}, roster.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter roster.QueryFilter) ([]roster.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]roster.Student, 0)
	for _, s := range repo.db.table {
		if filter.Match(*s) {
			students = append(students, *s)
		}
	}
	return students, nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
