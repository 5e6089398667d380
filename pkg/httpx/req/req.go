package req

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"deal_service/pkg/errcodes"
	"deal_service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var validate = newValidator() //nolint:gochecknoglobals // skip

// ValidationError carries per-field validation failures so that the reply
// package can render them as a structured list.
type ValidationError struct {
	Fields []rest.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %d invalid field(s)", len(e.Fields))
}

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return newValidationError(validationErrors)
		}

		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// PathInt64 parses a positive integer identifier from a path segment.
func PathInt64(raw string, code failure.ErrorCode) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid identifier %q", raw),
			failure.WithCode(code),
			failure.WithDescription("Identifier must be a positive integer"),
		)
	}

	return id, nil
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fields := make([]rest.FieldError, 0, len(errs))

	for _, fe := range errs {
		fields = append(fields, rest.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}

	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gt", "min":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
