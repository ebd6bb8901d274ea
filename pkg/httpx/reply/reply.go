package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"premium_api/pkg/contextx"
	"premium_api/pkg/errcodes"
	"premium_api/pkg/logx"
	"premium_api/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// codedError is satisfied by domain errors that carry their own code and whose
// text is safe to return to the caller.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
}

type errorResponse rest.Error

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = rest.ErrorCode(code.String())
	}
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      rest.ErrorCode(failure.Code(err).String()),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var coded codedError
	if errors.As(err, &coded) {
		response.Code = rest.ErrorCode(coded.ErrorCode().String())
		response.Message = coded.Error()
	}

	status := http.StatusInternalServerError

	switch {
	case failure.IsInvalidArgumentError(err):
		status = http.StatusBadRequest
		response.WithDefaultCode(errcodes.ValidationError)
	case failure.IsNotFoundError(err):
		status = http.StatusNotFound
		response.WithDefaultCode(errcodes.NotFound)
	case failure.IsForbiddenError(err):
		status = http.StatusForbidden
		response.WithDefaultCode(errcodes.Forbidden)
	case failure.IsUnprocessableEntityError(err):
		status = http.StatusUnprocessableEntity
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
	}

	logger(ctx).Error("error",
		slog.String(logx.FieldErrorCode, string(response.Code)),
		logx.Error(err),
	)

	JSON(ctx, w, status, response)
}

// NotFound and MethodNotAllowed keep router-level errors in the same envelope
// as handler errors.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(r.Context(), w, http.StatusNotFound, errorResponse{
		Code:      rest.ErrorCode(errcodes.NotFound.String()),
		Message:   "route not found",
		SupportID: supportID(r.Context()),
	})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSON(r.Context(), w, http.StatusMethodNotAllowed, errorResponse{
		Code:      rest.ErrorCode(errcodes.ValidationError.String()),
		Message:   "method not allowed",
		SupportID: supportID(r.Context()),
	})
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
