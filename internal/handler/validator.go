package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// InitValidator builds the shared validator. Later calls are no-ops.
func InitValidator() {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("category", validateCategory)
		validate = &Validator{validate: v}
	})
}

func GetValidator() *Validator {
	InitValidator()
	return validate
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields by their wire name so error maps match request bodies.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// FormatValidationError maps each failing field to a message safe to show clients.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "category":
		return "Invalid category"
	case "min":
		return fmt.Sprintf("Must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("Must be at most %s%s", fe.Param(), unit)
	case "excludesall":
		return "Contains invalid characters"
	}
	return "Invalid value"
}

// validateCategory accepts any category key in any letter case. Empty passes; pair with required.
func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := domain.ParseCategory(value)
	return err == nil
}
