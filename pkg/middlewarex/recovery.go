package middlewarex

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/zenazn/goji/web/mutil"

	"premium_api/pkg/httpx/reply"
	"premium_api/pkg/logx"
)

// Recovery turns a handler panic into a 500 error envelope. A response the
// handler has already started is left as is, and http.ErrAbortHandler is
// re-raised for net/http to abort the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		lw := mutil.WrapWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			// lw.Status() is 0 until the handler writes headers or body.
			if lw.Status() != 0 {
				return
			}

			reply.Error(ctx, lw, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(lw, r)
	})
}
