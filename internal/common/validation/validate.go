package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

func init() {
	// report field names from json tags so validation errors match payloads
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type ErrorValidateResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct runs the validator tags of a request struct and accumulates
// every violation, one ErrorValidateResponse per failed field.
func ValidateStruct(toValidate interface{}) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error

	if _, ok := err.(*validator.InvalidValidationError); ok {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Field:   valErr.Field(),
				Message: fmt.Sprintf("failed on the %q rule", valErr.Tag()),
			})
		}
		return errs.ErrorOrNil()
	}

	errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
	return errs.ErrorOrNil()
}
