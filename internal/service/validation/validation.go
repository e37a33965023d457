// Package validation adapts go-playground/validator to domain field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

const canonicalUUIDLength = 36

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		mustRegister(v, "flashcard_source", func(fl validator.FieldLevel) bool {
			return domain.FlashcardSource(fl.Field().String()).IsValid()
		})
		// Replaces the built-in tag, which rejects upper-case hex digits.
		mustRegister(v, "uuid", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			_, err := uuid.Parse(s)
			return err == nil && len(s) == canonicalUUIDLength
		})
		instance = v
	})
	return instance
}

// Struct validates s and returns one FieldError per failed rule. Field names
// follow json tags, prefixed with prefix when it is not empty.
func Struct(s any, prefix string) []domain.FieldError {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Field:   prefix + fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if isString {
			return fmt.Sprintf("max %s characters", fe.Param())
		}
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "min":
		if isString && fe.Param() == "1" {
			return "must not be empty"
		}
		if isString {
			return fmt.Sprintf("min %s characters", fe.Param())
		}
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "flashcard_source":
		return fmt.Sprintf("must be one of %s, %s, %s", domain.SourceAIFull, domain.SourceAIEdited, domain.SourceManual)
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
