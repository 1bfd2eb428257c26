package message

import (
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/roster"
)

const gradeReportTmpl = "grade_report"

var ErrNoRecipients = errors.New("no student of this class has an email address")

func init() {
	err := core.RegisterTemplate(
		gradeReportTmpl,
		`Hello {{.Data.Name}},

Your grade for {{.Data.Assignment}} ({{.Data.Subject}}) is {{.Data.Score}}/{{.Data.OutOf}} ({{.Data.Percentage}}%).

-- {{.AppName}}
`,
		`<p>Hello {{.Data.Name}},</p>
<p>Your grade for <b>{{.Data.Assignment}}</b> ({{.Data.Subject}}) is <b>{{.Data.Score}}/{{.Data.OutOf}}</b> ({{.Data.Percentage}}%).</p>
<p>-- {{.AppName}}</p>
`,
	)
	if err != nil {
		panic(err)
	}
}

// Compose is a message from the teacher to a whole class.
type Compose struct {
	Class   string `json:"class" validate:"required,classcode"`
	Subject string `json:"subject" validate:"required,notblank"`
	Body    string `json:"body" validate:"required,notblank"`
}

func (c *Compose) Validate(validate *validator.Validate) error {
	c.Class = strings.ToUpper(core.CleanString(c.Class))
	c.Subject = core.CleanString(c.Subject)
	c.Body = strings.TrimSpace(c.Body)
	return validate.Struct(c)
}

type gradeReport struct {
	Name       string
	Assignment string
	Subject    string
	Score      int
	OutOf      int
	Percentage int
}

type Service struct {
	roster   *roster.Service
	mailSvc  core.EmailService
	validate *validator.Validate
}

func NewService(rosterSvc *roster.Service, mailSvc core.EmailService, validate *validator.Validate) *Service {
	return &Service{roster: rosterSvc, mailSvc: mailSvc, validate: validate}
}

func recipient(s roster.Student) (mail.Address, bool) {
	if s.Email == "" {
		return mail.Address{}, false
	}
	return mail.Address{Name: s.Name, Address: s.Email}, true
}

// SendToClass sends c to every active student of the class with an email address.
// It returns the number of recipients.
func (svc *Service) SendToClass(c Compose) (int, error) {
	if err := c.Validate(svc.validate); err != nil {
		return 0, err
	}

	students, err := svc.roster.Class(c.Class)
	if err != nil {
		return 0, errors.Wrap(err, "loading class roster")
	}

	msg := &core.EmailMessage{
		ID:      uuid.New().String(),
		Subject: c.Subject,
		BodyStr: c.Body,
	}
	for _, s := range students {
		if addr, ok := recipient(s); ok {
			msg.Bcc = append(msg.Bcc, addr)
		}
	}
	if len(msg.Bcc) == 0 {
		return 0, core.NewValidationError(ErrNoRecipients, core.FieldError{Field: "class", Error: ErrNoRecipients.Error()})
	}

	svc.mailSvc.SendMessages(msg)
	return len(msg.Bcc), nil
}

// SendGradeReports mails each graded student of the sheet their own score.
// It returns the number of reports sent.
func (svc *Service) SendGradeReports(sh *grade.Sheet) (int, error) {
	store := sh.Store()
	messages := make([]*core.EmailMessage, 0, store.Len())
	for _, row := range sh.Rows() {
		if row.Score == nil {
			continue
		}
		addr, ok := recipient(row.Student)
		if !ok {
			continue
		}
		messages = append(messages, &core.EmailMessage{
			ID:           uuid.New().String(),
			To:           []mail.Address{addr},
			Subject:      "Your grade for " + sh.Assignment,
			TemplateName: gradeReportTmpl,
			TemplateData: gradeReport{
				Name:       row.Student.Name,
				Assignment: sh.Assignment,
				Subject:    sh.Subject.Name,
				Score:      *row.Score,
				OutOf:      store.OutOf(),
				Percentage: *row.Percentage,
			},
		})
	}
	if len(messages) == 0 {
		return 0, nil
	}
	svc.mailSvc.SendMessages(messages...)
	return len(messages), nil
}
