package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance reports fields by their YAML names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

// ValidationError names the offending YAML field.
type ValidationError struct {
	Field string
	Tag   string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: value %v failed validation for tag '%s'", e.Field, e.Value, e.Tag)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &ValidationError{Field: yamlFieldName(ve), Tag: ve.Tag(), Value: ve.Value()}
	}

	return err
}

// yamlFieldName drops the root struct name: "Config.data.backend" becomes
// "data.backend".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
