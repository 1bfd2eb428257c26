package grade

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/roster"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNothingToSave = errors.New("no grades to save")
	ErrEmptyClass    = errors.New("no active students in this class")
)

type Service struct {
	roster   *roster.Service
	validate *validator.Validate
	logger   core.Logger
	conf     *core.Config
}

func NewService(rosterSvc *roster.Service, validate *validator.Validate, logger core.Logger, conf *core.Config) *Service {
	return &Service{
		roster:   rosterSvc,
		validate: validate,
		logger:   logger,
		conf:     conf,
	}
}

// Open validates ns and builds a sheet over the active students of its class.
func (svc *Service) Open(ns NewSheet) (*Sheet, error) {
	if ns.OutOf == 0 {
		ns.OutOf = svc.conf.DefaultOutOf
	}
	if err := ns.Validate(svc.validate); err != nil {
		return nil, err
	}

	students, err := svc.roster.Class(ns.Class)
	if err != nil {
		return nil, errors.Wrap(err, "loading class roster")
	}
	if len(students) == 0 {
		return nil, core.NewValidationError(ErrEmptyClass, core.FieldError{Field: "class", Error: ErrEmptyClass.Error()})
	}
	return newSheet(ns, students), nil
}

// Save acknowledges the sheet's grades after the configured save delay.
// Grades are not persisted anywhere; the receipt is all that remains.
func (svc *Service) Save(ctx context.Context, sh *Sheet) (Receipt, error) {
	count := sh.store.Len()
	if count == 0 {
		return Receipt{}, core.NewValidationError(ErrNothingToSave)
	}

	if svc.conf.SaveDelay > 0 {
		timer := time.NewTimer(svc.conf.SaveDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, errors.Wrap(ctx.Err(), "saving grades")
		case <-timer.C:
		}
	}

	rcpt := Receipt{
		ID:         uuid.New().String(),
		Assignment: sh.Assignment,
		Class:      sh.Class,
		Subject:    sh.Subject.ID,
		Count:      count,
		SavedAt:    NowFunc().UTC(),
	}
	svc.logger.Info(
		fmt.Sprintf("grades saved: %s", rcpt.Message()),
		map[string]interface{}{
			"receipt": rcpt.ID,
			"class":   rcpt.Class,
			"subject": rcpt.Subject,
			"average": ClassAverage(sh.store),
		},
		svc.conf.Teacher,
	)
	return rcpt, nil
}
