package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "foodgram-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError turns validator failures into an apperrors.ValidationError
// naming the first offending field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(jsonFieldPath(fe.Namespace()), describeRule(fe))
}

// jsonFieldPath drops the struct name from a validator namespace: CreateRecipeRequest.Ingredients[0].Amount -> Ingredients[0].Amount
func jsonFieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "hexcolor":
		return "must be a hex colour"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
