package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"deal_service/pkg/contextx"
	"deal_service/pkg/errcodes"
	"deal_service/pkg/httpx/req"
	"deal_service/pkg/logx"
	"deal_service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Status writes an error body with an explicitly chosen HTTP status. It is
// used for errors whose kind is known to the caller but not to failure.
func Status(ctx context.Context, w http.ResponseWriter, statusCode int, code failure.ErrorCode, message string) {
	JSON(ctx, w, statusCode, rest.Error{
		Code:      rest.ErrorCode(code.String()),
		Message:   message,
		SupportID: supportID(ctx),
	})
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	var validationErr *req.ValidationError
	if errors.As(err, &validationErr) {
		JSON(ctx, w, http.StatusBadRequest, rest.Error{
			Code:      rest.ErrorCode(errcodes.ValidationError.String()),
			Message:   "Invalid request fields",
			SupportID: supportID(ctx),
			Fields:    validationErr.Fields,
		})

		return
	}

	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		withDefaultCode(&response, errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		withDefaultCode(&response, errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnauthorizedError(err):
		JSON(ctx, w, http.StatusUnauthorized, response)
	case failure.IsForbiddenError(err):
		withDefaultCode(&response, errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		withDefaultCode(&response, errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func withDefaultCode(response *rest.Error, code failure.ErrorCode) {
	if response.Code == "" {
		response.Code = rest.ErrorCode(code.String())
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
