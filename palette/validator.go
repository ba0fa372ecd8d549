package palette

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gcolor "github.com/RustVis/jiao-sub000"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	paletteNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used for
// palette documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their document key rather than the Go name.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return gcolor.IsValidColor(fl.Field().String())
		})

		_ = v.RegisterValidation("palette_name", func(fl validator.FieldLevel) bool {
			return paletteNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// convertValidationError normalizes validator errors into a ValidationError.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: documentField(fe), Tag: fe.Tag(), Value: fe.Value(), Err: err}
	}

	return &ValidationError{Field: "document", Tag: "invalid", Err: err}
}

// documentField drops the root struct name from the namespace.
func documentField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
