// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/models"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError represents a single field validation error with structured information.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the field name that failed validation (its json name when
// it has one).
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "5" for "max=5").
func (e *ValidationError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError represents a collection of validation errors.
// It wraps models.ErrInvalidInput.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Unwrap makes errors.Is(err, models.ErrInvalidInput) hold.
func (ve *RequestValidationError) Unwrap() error {
	return models.ErrInvalidInput
}

// ToAPIError converts validation errors to the command error format.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	return &models.APIError{
		Code:    models.CodeInvalidInput,
		Message: ve.Error(),
	}
}

// GetValidator returns the singleton validator instance.
// The validator is initialized once with custom validators and options.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report json names in messages ("rating", not "Rating").
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Decimals are validated as float64 so the numeric tags apply.
		validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

		mustRegister(validate, "notblank", notBlank)
		mustRegister(validate, "decimal_gte0", decimalNonNegative)
	})

	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// notBlank fails for strings that are empty or only whitespace.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// decimalNonNegative fails for negative prices.
func decimalNonNegative(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() >= 0
	case reflect.Int, reflect.Int64, reflect.Int32:
		return field.Int() >= 0
	default:
		return false
	}
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
//
// Example:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type - wrap it
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":     "%s is required",
	"notblank":     "%s must not be blank",
	"decimal_gte0": "%s must not be negative",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
