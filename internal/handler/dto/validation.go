package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/frankwrk/neomax-engage-rules/internal/constants"
)

// RegisterCustomValidators регистрирует доменные правила валидации
// (возрастной диапазон, графство, категория интересов) в валидаторе gin
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding validator engine is not *validator.Validate")
	}

	if err := v.RegisterValidation("agerange", func(fl validator.FieldLevel) bool {
		return constants.Contains(constants.AgeRanges, fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("county", func(fl validator.FieldLevel) bool {
		return constants.Contains(constants.Counties, fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return constants.Contains(constants.InterestCategories, fl.Field().String())
	}); err != nil {
		return err
	}

	return nil
}
