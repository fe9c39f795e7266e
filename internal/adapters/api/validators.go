package api

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"sheetforecast.app/pkg/errors"
	"sheetforecast.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// validateISODate accepts blank values so the use case can report them itself
func validateISODate(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	return value == "" || validation.IsISODate(value)
}

func validateCoord(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	return value == "" || validation.IsCoordinate(value)
}

// RegisterValidators installs the isodate and coord binding tags on gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.NewConfigurationError("gin validator engine is not go-playground/validator", nil)
			return
		}
		if err := v.RegisterValidation("isodate", validateISODate); err != nil {
			registerErr = errors.NewConfigurationError("failed to register isodate validator", err)
			return
		}
		if err := v.RegisterValidation("coord", validateCoord); err != nil {
			registerErr = errors.NewConfigurationError("failed to register coord validator", err)
		}
	})
	return registerErr
}
