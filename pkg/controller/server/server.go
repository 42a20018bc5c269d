package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/errutil"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiMethod  = "template-api"
	apiVersion = "2.0"

	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// DefaultAllowedOrigins are the origins of the admin front-ends.
var DefaultAllowedOrigins = []string{
	"https://recettes-blog-test.pages.dev",
	"http://localhost:1313",
}

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: body is JSON encoded by writeJSON
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, resp any) {
	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		errutil.HandleError(ctx, "fail to marshal response", err)
		code = http.StatusInternalServerError
		body = []byte(`{"error": "failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Method    string `json:"method"`
	Version   string `json:"version"`
}

type cloneSiteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*model.CloneSiteOutput
}

type listSitesResponse struct {
	Success bool               `json:"success"`
	Sites   model.SiteRegistry `json:"sites"`
	Count   int                `json:"count"`
}

type config struct {
	allowedOrigins []string
}

type Option func(*config)

// WithAllowedOrigins replaces the CORS allow-list. The first origin is
// returned to callers whose origin is not listed.
func WithAllowedOrigins(origins ...string) Option {
	return func(cfg *config) {
		cfg.allowedOrigins = origins
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		allowedOrigins: DefaultAllowedOrigins,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(recoverer)
	r.Use(cors(cfg.allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusNotFound, &errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, &errorResponse{Error: "method not allowed"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, &healthResponse{
			Status:    "ok",
			Timestamp: logging.CtxTime(r.Context()).UTC().Format(timestampFormat),
			Method:    apiMethod,
			Version:   apiVersion,
		})
	})
	r.Post("/api/clone-site", handleCloneSite(uc))
	r.Get("/api/list-sites", handleListSites(uc))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleCloneSite(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CloneSiteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, &errorResponse{
				Error:   "invalid request body",
				Details: err.Error(),
			})
			return
		}

		// The clone keeps running when the client disconnects
		ctx := DetachContext(r.Context())

		output, err := uc.CloneSite(ctx, &input)
		if err != nil {
			code, resp := cloneErrorResponse(err)
			if code == http.StatusInternalServerError {
				errutil.HandleError(ctx, "fail to clone site", err)
			} else {
				logging.From(ctx).Info("rejected clone request", slog.Any("error", err))
			}
			writeJSON(r.Context(), w, code, resp)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, &cloneSiteResponse{
			Success:         true,
			Message:         fmt.Sprintf("Site %q created successfully!", input.SiteName),
			CloneSiteOutput: output,
		})
	}
}

func cloneErrorResponse(err error) (int, *errorResponse) {
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		return http.StatusBadRequest, &errorResponse{Error: err.Error()}
	case errors.Is(err, types.ErrMissingCredential):
		return http.StatusInternalServerError, &errorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, &errorResponse{
			Error:   "clone failed",
			Details: err.Error(),
		}
	}
}

func handleListSites(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sites, err := uc.ListSites(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list sites", err)
			writeJSON(r.Context(), w, http.StatusInternalServerError, &errorResponse{
				Error:   "failed to list sites",
				Details: err.Error(),
			})
			return
		}
		if sites == nil {
			sites = model.SiteRegistry{}
		}

		writeJSON(r.Context(), w, http.StatusOK, &listSitesResponse{
			Success: true,
			Sites:   sites,
			Count:   len(sites),
		})
	}
}
