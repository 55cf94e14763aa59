package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

// shape checks request bodies for presence and format only. Business rules
// live in the domain validators.
var shape = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// checkShape validates req against its struct tags. Failures come back as a
// *domain.ValidationError keyed by JSON field path, for example "ids[1]".
func checkShape(req any) error {
	err := shape.Struct(req)
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) {
		return err
	}

	fields := make(map[string]string, len(fails))
	for _, fe := range fails {
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		fields[path] = failureMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return msgRequired
	case "isodate":
		return "must be a date in YYYY-MM-DD form"
	case "gt":
		return msgMustPositive
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item", fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}
