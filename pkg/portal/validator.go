package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	driver *validator.Validate
	errors map[string]string
}

func GetDefaultValidator() *Validator {
	driver := validator.New(validator.WithRequiredStructEnabled())

	registerCustomValidations(driver)

	return &Validator{
		driver: driver,
		errors: map[string]string{},
	}
}

func (v *Validator) Passes(abstract any) (bool, error) {
	v.errors = map[string]string{}

	err := v.driver.Struct(abstract)

	if err == nil {
		return true, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return false, fmt.Errorf("invalid validation target: %w", err)
	}

	var fails validator.ValidationErrors
	if errors.As(err, &fails) {
		for _, item := range fails {
			field := strings.ToLower(item.Field())
			v.errors[field] = fmt.Sprintf("failed on the [%s] rule", item.Tag())
		}
	}

	return false, err
}

func (v *Validator) Rejects(abstract any) (bool, error) {
	passes, err := v.Passes(abstract)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	data, err := json.Marshal(v.errors)

	if err != nil {
		slog.Error("validator: could not marshal errors", "error", err)

		return ""
	}

	return string(data)
}
