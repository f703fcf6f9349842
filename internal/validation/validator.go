// Package validation checks request payloads with the validator/v10 library
// and converts failures to domain validation errors.
package validation

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
)

// BaseLayered is implemented by outfit payloads, which must name a top or a bottom.
type BaseLayered interface {
	HasBaseLayer() bool
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for wardrobe payloads.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", enum(domain.Category.Valid))
	_ = v.RegisterValidation("style", enum(domain.Style.Valid))
	_ = v.RegisterValidation("weather", enum(domain.Weather.Valid))

	return &Validator{v: v}
}

// enum adapts a domain Valid method to a field validator.
func enum[T ~string](valid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(T(fl.Field().String()))
	}
}

// Validate validates a struct and returns a domain error.
func (v *Validator) Validate(s any) error {
	fieldErrors := make(map[string]string)

	if err := v.v.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, e := range validationErrs {
			fieldErrors[e.Field()] = friendlyMessage(e)
		}
	}

	if bl, ok := s.(BaseLayered); ok && !bl.HasBaseLayer() {
		fieldErrors["topId"] = "a top or a bottom is required"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return domainerrors.ValidationWithDetails(summary(fieldErrors), fieldErrors)
}

// summary renders field errors in a stable order: "name is required; photo is required".
func summary(fieldErrors map[string]string) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, field := range slices.Sorted(maps.Keys(fieldErrors)) {
		parts = append(parts, field+" "+fieldErrors[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "category":
		return "must be one of: " + join(domain.AllCategories())
	case "style":
		return "must be one of: " + join(domain.AllStyles())
	case "weather":
		return "must be one of: " + join(domain.AllWeather())
	default:
		return "is invalid"
	}
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " ")
}
