package roster

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	studentStatusTag  = "studentstatus"
	studentStatusText = "status must be one of " + strings.Join(AllStatuses, ", ")
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(studentStatusTag, studentStatusValidation)
	core.RegisterCustomTranslation(validate, translator, studentStatusTag, studentStatusText)
}

// studentStatusValidation checks that the status is one of AllStatuses
func studentStatusValidation(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	for _, s := range AllStatuses {
		if status == s {
			return true
		}
	}
	return false
}
