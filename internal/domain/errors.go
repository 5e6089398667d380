package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError — ошибка с доменным кодом. Транспорт переводит код в статус
// ответа, Message уходит клиенту как есть, cause остаётся только в логах.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает доменные ошибки по коду, сообщение не учитывается:
// errors.Is(err, domain.NewError(errcodes.DealNotFound, "")).
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Errorf(code failure.ErrorCode, format string, args ...any) *AppError {
	return NewError(code, fmt.Sprintf(format, args...))
}

// WrapError прячет техническую причину за доменным кодом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode возвращает код ближайшей AppError в цепочке.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)
	return ok && got == code
}
