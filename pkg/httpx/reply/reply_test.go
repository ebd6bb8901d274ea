package reply_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"premium_api/pkg/contextx"
	"premium_api/pkg/errcodes"
	"premium_api/pkg/httpx/reply"
)

type codedError struct {
	code failure.ErrorCode
	text string
}

func (e codedError) Error() string {
	return e.text
}

func (e codedError) ErrorCode() failure.ErrorCode {
	return e.code
}

func TestError(t *testing.T) {
	rq := require.New(t)
	ctx := contextx.WithTraceID(context.Background(), "trace-1")

	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "Invalid argument",
			err:    failure.NewInvalidArgumentError("bad", failure.WithCode(errcodes.ValidationError)),
			status: http.StatusBadRequest,
			code:   `"code":"ValidationError"`,
		},
		{
			name:   "Domain error",
			err:    fmt.Errorf("wrapped: %w", codedError{code: errcodes.PredictionMismatch, text: "labels disagree"}),
			status: http.StatusInternalServerError,
			code:   `"code":"PredictionMismatch","message":"labels disagree"`,
		},
		{
			name:   "Plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   `"code":"InternalServerError"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.status, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
			rq.Contains(w.Body.String(), tc.code)
			rq.Contains(w.Body.String(), `"supportId":"trace-1"`)
		})
	}
}

func TestErrorWithoutTraceID(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	reply.Error(context.Background(), w, errors.New("boom"))

	rq.Contains(w.Body.String(), `"supportId":"unsupported"`)
}

func TestJSON(t *testing.T) {
	rq := require.New(t)
	w := httptest.NewRecorder()

	reply.JSON(context.Background(), w, http.StatusCreated, map[string]string{"status": "OK"})

	rq.Equal(http.StatusCreated, w.Code)
	rq.JSONEq(`{"status":"OK"}`, w.Body.String())
}

func TestErrorLogsCode(t *testing.T) {
	rq := require.New(t)

	var logs bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	w := httptest.NewRecorder()

	reply.Error(ctx, w, codedError{code: errcodes.PredictionFailed, text: "prediction failed"})

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(logs.String(), `"error-code":"PredictionFailed"`)
}
