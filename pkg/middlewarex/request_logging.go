package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"premium_api/pkg/logx"
)

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, r.ContentLength != 0)

			if len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			attrs := []any{slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump)))}
			if err != nil {
				attrs = append(attrs, logx.Error(err))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}
