package settings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// ErrInvalid marks a settings validation failure.
var ErrInvalid = errors.New("invalid settings")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their settings-file key.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks s and reports every violated constraint in one error
// matching ErrInvalid.
func Validate(s *Settings) error {
	if s == nil {
		return errors.Wrap(ErrInvalid, "settings are nil")
	}

	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validating settings")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.Wrap(ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "eq":
		if field == "version" {
			return "unsupported settings version: " + valueString(fe)
		}
		return field + " must be " + fe.Param()
	case "oneof":
		return field + " must be one of [" + fe.Param() + "], got " + valueString(fe)
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " failed " + fe.Tag()
	}
}

func valueString(fe validator.FieldError) string {
	if s, ok := fe.Value().(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(fe.Value())
}
