package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/roster"
	"github.com/trezcool/gradebook/tests"
)

func names(students []roster.Student) []string {
	nms := make([]string, 0, len(students))
	for _, s := range students {
		nms = append(nms, s.Name)
	}
	return nms
}

func TestService_Create(t *testing.T) {
	svc := testutil.RosterService(t)
	_, err := svc.Create(roster.NewStudent{Name: "Taken", Class: "10A", AdmissionNumber: "MSM001"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		ns          roster.NewStudent
		wantInvalid bool
		wantFields  []string
	}{
		{name: "valid", ns: roster.NewStudent{Name: " Amani Kabila ", Email: "amani@test.cd", Class: "10a", AdmissionNumber: "msm002", Performance: 90, Attendance: 95}},
		{name: "no name", ns: roster.NewStudent{Class: "10A"}, wantInvalid: true, wantFields: []string{"name"}},
		{name: "blank name", ns: roster.NewStudent{Name: "   ", Class: "10A"}, wantInvalid: true, wantFields: []string{"name"}},
		{name: "bad email", ns: roster.NewStudent{Name: "A", Email: "lol", Class: "10A"}, wantInvalid: true, wantFields: []string{"email"}},
		{name: "no class", ns: roster.NewStudent{Name: "A"}, wantInvalid: true, wantFields: []string{"class"}},
		{name: "bad class", ns: roster.NewStudent{Name: "A", Class: "Grade 10"}, wantInvalid: true, wantFields: []string{"class"}},
		{name: "bad admission number", ns: roster.NewStudent{Name: "A", Class: "10A", AdmissionNumber: "MSM-1"}, wantInvalid: true, wantFields: []string{"admission_number"}},
		{name: "taken admission number", ns: roster.NewStudent{Name: "A", Class: "10A", AdmissionNumber: "msm001"}, wantInvalid: true, wantFields: []string{"admission_number"}},
		{name: "performance too high", ns: roster.NewStudent{Name: "A", Class: "10A", Performance: 101}, wantInvalid: true, wantFields: []string{"performance"}},
		{name: "negative attendance", ns: roster.NewStudent{Name: "A", Class: "10A", Attendance: -1}, wantInvalid: true, wantFields: []string{"attendance"}},
		{name: "bad status", ns: roster.NewStudent{Name: "A", Class: "10A", Status: "expelled"}, wantInvalid: true, wantFields: []string{"status"}},
	}
	_, translator := testutil.Validator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := svc.Create(tt.ns)
			if tt.wantInvalid {
				require.True(t, core.IsValidationError(err), "Create() error = %v, want a validation error", err)
				fldErrs := core.FieldErrors(err, translator)
				for _, f := range tt.wantFields {
					assert.Contains(t, fldErrs, f)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, s.ID)
			assert.Equal(t, "Amani Kabila", s.Name)
			assert.Equal(t, "10A", s.Class)
			assert.Equal(t, "MSM002", s.AdmissionNumber)
			assert.Equal(t, roster.StatusActive, s.Status)
			assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt, time.Minute)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	svc := testutil.RosterService(t)
	s := testutil.CreateStudent(t, svc, "Amani Kabila", "10A", "", 90)

	got, err := svc.GetByID(" " + s.ID + " ")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = svc.GetByID("lol")
	assert.Equal(t, roster.ErrNotFound, err)
}

func TestService_Query(t *testing.T) {
	svc := testutil.RosterService(t)
	testutil.CreateStudent(t, svc, "Chance Mbuyi", "10A", "chance@test.cd", 64)
	testutil.CreateStudent(t, svc, "amani Kabila", "10A", "amani@test.cd", 92)
	testutil.CreateStudent(t, svc, "Bisimwa Lukusa", "10B", "bisimwa@school.cd", 78)
	testutil.CreateStudent(t, svc, "Divine Ngoy", "10B", "divine@test.cd", 85, roster.StatusSuspended)

	tests := []struct {
		name      string
		filter    roster.QueryFilter
		orderings []core.Ordering
		want      []string
	}{
		{name: "all by name", want: []string{"amani Kabila", "Bisimwa Lukusa", "Chance Mbuyi", "Divine Ngoy"}},
		{name: "class", filter: roster.QueryFilter{Class: " 10b "}, want: []string{"Bisimwa Lukusa", "Divine Ngoy"}},
		{name: "status", filter: roster.QueryFilter{Status: "SUSPENDED"}, want: []string{"Divine Ngoy"}},
		{name: "search name", filter: roster.QueryFilter{Search: "KAB"}, want: []string{"amani Kabila"}},
		{name: "search email", filter: roster.QueryFilter{Search: "school.cd"}, want: []string{"Bisimwa Lukusa"}},
		{name: "and", filter: roster.QueryFilter{Class: "10B", Status: roster.StatusActive}, want: []string{"Bisimwa Lukusa"}},
		{name: "no match", filter: roster.QueryFilter{Class: "10A", Search: "divine"}, want: []string{}},
		{
			name:      "performance desc",
			orderings: core.ParseOrdering("-performance"),
			want:      []string{"amani Kabila", "Divine Ngoy", "Bisimwa Lukusa", "Chance Mbuyi"},
		},
		{
			name:      "class then performance",
			orderings: core.ParseOrdering("class,performance"),
			want:      []string{"Chance Mbuyi", "amani Kabila", "Bisimwa Lukusa", "Divine Ngoy"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Query(tt.filter, tt.orderings...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestService_Class(t *testing.T) {
	svc := testutil.RosterService(t)
	testutil.CreateStudent(t, svc, "Chance Mbuyi", "10A", "", 64)
	testutil.CreateStudent(t, svc, "Amani Kabila", "10A", "", 92)
	testutil.CreateStudent(t, svc, "Kevin Banza", "10A", "", 60, roster.StatusInactive)
	testutil.CreateStudent(t, svc, "Bisimwa Lukusa", "10B", "", 78)

	got, err := svc.Class("10a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amani Kabila", "Chance Mbuyi"}, names(got))

	classes, err := svc.Classes()
	require.NoError(t, err)
	assert.Equal(t, []string{"10A", "10B"}, classes)

	counts, err := svc.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{roster.StatusActive: 3, roster.StatusInactive: 1, roster.StatusSuspended: 0}, counts)
}

func TestService_Delete(t *testing.T) {
	svc := testutil.RosterService(t)
	a := testutil.CreateStudent(t, svc, "Amani Kabila", "10A", "", 92)
	b := testutil.CreateStudent(t, svc, "Chance Mbuyi", "10A", "", 64)

	require.NoError(t, svc.Delete(a.ID, "unknown"))

	got, err := svc.Query(roster.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{b.Name}, names(got))
}

func TestClosest(t *testing.T) {
	students := []roster.Student{
		{Name: "Amani Kabila"},
		{Name: "Bisimwa Lukusa"},
		{Name: "Chance Mbuyi"},
	}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{name: "typo", input: "Amani Kabla", want: "Amani Kabila", wantOk: true},
		{name: "case", input: "BISIMWA LUKUSA", want: "Bisimwa Lukusa", wantOk: true},
		{name: "too far", input: "Xyz"},
		{name: "blank", input: "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := roster.Closest(tt.input, students)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestStudent_Initials(t *testing.T) {
	assert.Equal(t, "AK", roster.Student{Name: "Amani Kabila"}.Initials())
	assert.Equal(t, "JK", roster.Student{Name: "joëlle  kasongo"}.Initials())
	assert.Equal(t, "", roster.Student{}.Initials())
}
