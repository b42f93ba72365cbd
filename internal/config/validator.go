package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate performs validation on the Config structure.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				return fmt.Errorf("invalid configuration: field '%s' failed on '%s'", fieldErr.Namespace(), fieldErr.Tag())
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
