package inmemdb

import (
	"sync"

	"github.com/trezcool/gradebook/core/roster"
)

type (
	DB struct {
		student *studentTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*roster.Student
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[string]*roster.Student)},
	}
	return db, nil
}

// Reset drops every row.
func (db *DB) Reset() {
	db.student.Lock()
	db.student.table = make(map[string]*roster.Student)
	db.student.Unlock()
}
