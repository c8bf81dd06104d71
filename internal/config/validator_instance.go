package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColor6Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColor6Pattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(fl.Field().String()) {
			case "light", "dark":
				return true
			}
			return false
		})

		_ = v.RegisterValidation("store_path", func(fl validator.FieldLevel) bool {
			return isValidStorePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidStorePath performs syntactic validation of a store location without filesystem access.
func isValidStorePath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	// A directory cannot hold the store document itself.
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}

	return filepath.Base(path) != ".."
}
