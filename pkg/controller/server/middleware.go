package server

import (
	"net/http"
	"regexp"
	"slices"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/errutil"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(requestIDHeader); validRequestID.MatchString(id) {
			ctx = logging.CtxWithRequestID(ctx, types.RequestID(id))
		}
		reqID, ctx := logging.CtxRequestID(ctx)
		w.Header().Set(requestIDHeader, string(reqID))
		logger := logging.Default().With(slog.String("request_id", string(reqID)))
		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("origin", r.Header.Get("Origin")),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// corsOrigin echoes origin when allowed, otherwise answers with the first
// allowed origin so that browsers reject the response.
func corsOrigin(allowed []string, origin string) string {
	if slices.Contains(allowed, origin) {
		return origin
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return ""
}

func cors(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := corsOrigin(allowed, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := goerr.New("panic in handler", goerr.V("recovered", rec), goerr.V("path", r.URL.Path))
			errutil.HandleError(r.Context(), "recovered from panic", err)
			writeJSON(r.Context(), w, http.StatusInternalServerError, &errorResponse{
				Error:   "internal server error",
				Details: err.Error(),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
