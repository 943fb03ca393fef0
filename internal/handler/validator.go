package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// Validator checks request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	sharedValidator     *Validator
	sharedValidatorOnce sync.Once
)

// fixed messages per tag; tags with a parameter are formatted in describe
var tagMessages = map[string]string{
	"required":   "This field is required",
	"gridmode":   "Invalid grid mode",
	"shardtier":  "Invalid shard tier",
	"printascii": "Contains invalid characters",
}

// NewValidator builds a validator with the domain tags registered. Field
// errors are reported under their JSON names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("gridmode", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseGridMode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("shardtier", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseShardTier(fl.Field().String())
		return err == nil
	})
	return &Validator{validate: v}
}

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	sharedValidatorOnce.Do(func() { sharedValidator = NewValidator() })
	return sharedValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field to a client-facing message.
// Anything other than validation errors collapses to a single "error" key.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	}
	return "Invalid value"
}

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
