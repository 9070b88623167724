package portal

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// Accepts the same grammar the backup scheduler does, descriptors and an
// optional seconds field included.
var cronSpecParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func registerCustomValidations(v *validator.Validate) {
	if v == nil {
		return
	}

	if err := v.RegisterValidation("cron", cronTagValidator); err != nil {
		panic("portal: failed to register cron validation: " + err.Error())
	}
}

func cronTagValidator(fl validator.FieldLevel) bool {
	spec := strings.TrimSpace(fl.Field().String())

	if spec == "" {
		return false
	}

	_, err := cronSpecParser.Parse(spec)

	return err == nil
}
