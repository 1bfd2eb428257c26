package inmemdb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core/roster"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
	"github.com/trezcool/gradebook/tests"
)

func TestStudentRepository(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := inmemdb.NewStudentRepository(db)

	s, err := repo.CreateStudent(roster.Student{Name: "Amani Kabila", Class: "10A", AdmissionNumber: "MSM001", Status: roster.StatusActive})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	kept, err := repo.CreateStudent(roster.Student{ID: "fixed", Name: "Chance Mbuyi", Class: "10B", Status: roster.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, "fixed", kept.ID)

	got, err := repo.GetStudentByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got, err = repo.GetStudentByAdmissionNumber("MSM001")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = repo.GetStudentByID("lol")
	assert.Equal(t, roster.ErrNotFound, err)
	_, err = repo.GetStudentByAdmissionNumber("MSM999")
	assert.Equal(t, roster.ErrNotFound, err)

	all, err := repo.QueryAllStudents()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.FilterStudents(roster.QueryFilter{Class: "10B"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "fixed", filtered[0].ID)

	// returned rows are copies
	got.Name = "changed"
	got, _ = repo.GetStudentByID(s.ID)
	assert.Equal(t, "Amani Kabila", got.Name)

	require.NoError(t, repo.DeleteStudentsByID(s.ID))
	all, _ = repo.QueryAllStudents()
	assert.Len(t, all, 1)

	db.Reset()
	all, _ = repo.QueryAllStudents()
	assert.Empty(t, all)
}

func TestStudentRepository_concurrent(t *testing.T) {
	repo := inmemdb.NewStudentRepository(testutil.OpenDB(t))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.CreateStudent(roster.Student{Name: "S", Class: "10A"})
			_, _ = repo.QueryAllStudents()
		}()
	}
	wg.Wait()

	all, err := repo.QueryAllStudents()
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestSeed(t *testing.T) {
	svc := testutil.RosterService(t)
	require.NoError(t, inmemdb.Seed(svc))

	all, err := svc.Query(roster.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(inmemdb.SeedStudents))

	classes, err := svc.Classes()
	require.NoError(t, err)
	assert.Equal(t, []string{"10A", "10B", "SS1A"}, classes)

	// admission numbers are unique
	err = inmemdb.Seed(svc)
	assert.Error(t, err)
}
