package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"premium_api/pkg/contextx"
	"premium_api/pkg/httpx"
)

// TraceID reuses the caller's X-Trace-Id or generates one, and echoes it in
// the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(httpx.HeaderNameTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(httpx.HeaderNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
