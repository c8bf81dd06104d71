package gradient

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	stopColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// validatorInstance returns the shared validator used for gradient values.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("stop_color", func(fl validator.FieldLevel) bool {
			return stopColorPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// convertValidationError normalizes validator errors into huey validation errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return hueyerrors.NewValidationError(field, msg, err)
	}
	return hueyerrors.NewValidationError("gradient", err.Error(), err)
}

// fieldName drops the root struct name: "Value.colorStops[0].color" becomes
// "colorStops[0].color".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
