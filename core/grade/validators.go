package grade

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	subjectTag  = "subject"
	subjectText = "unknown subject"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(subjectTag, subjectValidation)
	core.RegisterCustomTranslation(validate, translator, subjectTag, subjectText)
}

// subjectValidation checks that the subject ID is one of Subjects
func subjectValidation(fl validator.FieldLevel) bool {
	_, ok := SubjectByID(fl.Field().String())
	return ok
}
