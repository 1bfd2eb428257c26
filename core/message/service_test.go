package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/roster"
	emailsvc "github.com/trezcool/gradebook/services/email"
	"github.com/trezcool/gradebook/tests"
)

func setup(t *testing.T) (*Service, *grade.Service, *roster.Service, *emailsvc.ConsoleServiceMock) {
	conf := testutil.Config()
	logger := testutil.Logger()
	validate, _ := testutil.Validator(grade.InitValidators)
	rosterSvc := testutil.RosterService(t, grade.InitValidators)
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)

	svc := NewService(rosterSvc, mailSvc, validate)
	return svc, grade.NewService(rosterSvc, validate, logger, conf), rosterSvc, mailSvc
}

func TestService_SendToClass(t *testing.T) {
	svc, _, rosterSvc, mailSvc := setup(t)
	testutil.CreateStudent(t, rosterSvc, "Amani Kabila", "10A", "amani@test.cd", 92)
	testutil.CreateStudent(t, rosterSvc, "Chance Mbuyi", "10A", "chance@test.cd", 64)
	testutil.CreateStudent(t, rosterSvc, "Esther Ilunga", "10A", "", 47)
	testutil.CreateStudent(t, rosterSvc, "Kevin Banza", "10A", "kevin@test.cd", 60, roster.StatusInactive)
	testutil.CreateStudent(t, rosterSvc, "Grace Mwamba", "10B", "grace@test.cd", 88)
	testutil.CreateStudent(t, rosterSvc, "Héritier Tshibangu", "10C", "", 56)

	tests := []struct {
		name        string
		compose     Compose
		wantInvalid bool
		wantSent    int
		wantBcc     []string
	}{
		{name: "no class", compose: Compose{Subject: "Hi", Body: "Hello"}, wantInvalid: true},
		{name: "blank subject", compose: Compose{Class: "10A", Subject: " ", Body: "Hello"}, wantInvalid: true},
		{name: "no body", compose: Compose{Class: "10A", Subject: "Hi"}, wantInvalid: true},
		{name: "no email on file", compose: Compose{Class: "10C", Subject: "Hi", Body: "Hello"}, wantInvalid: true},
		{
			name:     "sent",
			compose:  Compose{Class: " 10a ", Subject: "Test on Friday", Body: "  Revise chapter 3.  "},
			wantSent: 2,
			wantBcc:  []string{"amani@test.cd", "chance@test.cd"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(mailSvc.Sent())
			sent, err := svc.SendToClass(tt.compose)
			if tt.wantInvalid {
				assert.True(t, core.IsValidationError(err), "SendToClass() error = %v, want a validation error", err)
				assert.Len(t, mailSvc.Sent(), before)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, sent)

			msgs := mailSvc.Sent()
			require.Len(t, msgs, before+1)
			msg := msgs[len(msgs)-1]
			assert.Empty(t, msg.To)
			bcc := make([]string, 0, len(msg.Bcc))
			for _, addr := range msg.Bcc {
				bcc = append(bcc, addr.Address)
			}
			assert.ElementsMatch(t, tt.wantBcc, bcc)
			assert.Equal(t, "Test on Friday", msg.Subject)
			assert.Equal(t, "Revise chapter 3.", msg.TextContent)
		})
	}
}

func TestService_SendGradeReports(t *testing.T) {
	svc, gradeSvc, rosterSvc, mailSvc := setup(t)
	amani := testutil.CreateStudent(t, rosterSvc, "Amani Kabila", "10A", "amani@test.cd", 92)
	testutil.CreateStudent(t, rosterSvc, "Chance Mbuyi", "10A", "chance@test.cd", 64) // never graded
	esther := testutil.CreateStudent(t, rosterSvc, "Esther Ilunga", "10A", "", 47)

	sh, err := gradeSvc.Open(grade.NewSheet{Assignment: "Quiz 1", Class: "10A", Subject: "sci", OutOf: 20})
	require.NoError(t, err)

	sent, err := svc.SendGradeReports(sh)
	require.NoError(t, err)
	assert.Zero(t, sent, "nothing graded")
	assert.Empty(t, mailSvc.Sent())

	sh.SetScore(amani.ID, "17")
	sh.SetScore(esther.ID, "9") // no email

	sent, err = svc.SendGradeReports(sh)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	msgs := mailSvc.Sent()
	require.Len(t, msgs, 1)
	msg := msgs[0]
	require.Len(t, msg.To, 1)
	assert.Equal(t, "amani@test.cd", msg.To[0].Address)
	assert.Equal(t, "Your grade for Quiz 1", msg.Subject)
	assert.Contains(t, msg.TextContent, "Hello Amani Kabila,")
	assert.Contains(t, msg.TextContent, "Your grade for Quiz 1 (Science) is 17/20 (85%).")
	assert.Contains(t, msg.TextContent, "-- Masomo")
	assert.Contains(t, msg.HTMLContent, "<b>17/20</b>")
}
