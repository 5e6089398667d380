package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"deal_service/internal/domain"
	"deal_service/pkg/contextx"
	"deal_service/pkg/errcodes"
	"deal_service/pkg/httpx/reply"
	"deal_service/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// writeError переводит доменные коды в HTTP-статусы. Ошибки без доменного
// кода обрабатывает reply.Error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		reply.Error(ctx, w, err)
		return
	}

	status := statusByCode(appErr.Code)
	if status == http.StatusInternalServerError {
		logger(ctx).Error("internal error", logx.Error(err))
		reply.Status(ctx, w, status, errcodes.InternalServerError, "Internal server error")

		return
	}

	logger(ctx).Info("request rejected", logx.Error(err))
	reply.Status(ctx, w, status, appErr.Code, appErr.Message)
}

// internalError отвечает на панику обработчика тем же телом, что и на
// любую внутреннюю ошибку.
func internalError(w http.ResponseWriter, r *http.Request) {
	reply.Status(r.Context(), w, http.StatusInternalServerError, errcodes.InternalServerError, "Internal server error")
}

func statusByCode(code failure.ErrorCode) int {
	switch {
	case code == errcodes.TagAlreadyExists:
		return http.StatusConflict
	case code == errcodes.NotFound, strings.HasSuffix(code.String(), "NotFound"):
		return http.StatusNotFound
	case code == errcodes.ValidationError, strings.HasPrefix(code.String(), "Invalid"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
