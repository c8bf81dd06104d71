package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// Validate performs structural validation on an entire configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return hueyerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into huey validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return hueyerrors.NewValidationError(field, msg, err)
	}

	return hueyerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Palette.Theme" into "palette.theme".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
