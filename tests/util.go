package testutil

import (
	"io/ioutil"
	"log"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/roster"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
)

type InitValidatorsFunc func(*validator.Validate, ut.Translator)

func Config() *core.Config {
	return &core.Config{
		Debug:            true,
		TestMode:         true,
		AppName:          "Masomo",
		Build:            "test",
		Env:              "TEST",
		Teacher:          core.Person{ID: "t1", Name: "Mme Teacher", Email: "teacher@test.cd"},
		DefaultFromEmail: "noreply@test.cd",
		DefaultOutOf:     100,
	}
}

// Logger discards everything.
func Logger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), Config())
	logger.Enable(false)
	return logger
}

// Validator returns a validator with the core and roster validators plus any extra ones registered.
func Validator(inits ...InitValidatorsFunc) (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	roster.InitValidators(validate, translator)
	for _, fn := range inits {
		fn(validate, translator)
	}
	return validate, translator
}

func OpenDB(t *testing.T) *inmemdb.DB {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

// RosterService opens a fresh DB and returns its roster service.
func RosterService(t *testing.T, inits ...InitValidatorsFunc) *roster.Service {
	validate, _ := Validator(inits...)
	return roster.NewService(inmemdb.NewStudentRepository(OpenDB(t)), validate)
}

func CreateStudent(
	t *testing.T,
	svc *roster.Service,
	name, class, email string,
	performance int,
	status ...string,
) roster.Student {
	ns := roster.NewStudent{
		Name:        name,
		Class:       class,
		Email:       email,
		Performance: performance,
		Attendance:  performance,
	}
	if len(status) > 0 {
		ns.Status = status[0]
	}
	s, err := svc.Create(ns)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}
