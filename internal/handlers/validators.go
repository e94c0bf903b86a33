package handlers

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Z]{2,10}$`)
	rateTypePattern     = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
)

// RegisterValidators installs the custom binding validators used by the
// rate DTOs on gin's validator engine. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	if err := v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("ratetype", func(fl validator.FieldLevel) bool {
		return rateTypePattern.MatchString(fl.Field().String())
	})
}
