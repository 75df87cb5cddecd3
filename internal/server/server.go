// Package server exposes the configuration manager as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/earning-formula/internal/manager"
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/internal/store"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"go.uber.org/zap"
)

// Service is the part of *manager.Manager the API drives.
type Service interface {
	State() manager.State
	ClearError()
	AddJob(ctx context.Context, job model.Job) (model.Job, error)
	UpdateJob(ctx context.Context, job model.Job) error
	DeleteJob(ctx context.Context, id string) error
	ClearAllJobs(ctx context.Context) error
	SaveConfiguration(ctx context.Context, name string) (model.WorkConfiguration, error)
	CreateNewConfigurationWithName(ctx context.Context, name string) (model.WorkConfiguration, error)
	CreateNewConfiguration(ctx context.Context) error
	LoadConfiguration(ctx context.Context, id string) error
	DeleteConfiguration(ctx context.Context, id string) error
	RefreshSavedConfigurations(ctx context.Context) error
	ExportConfigurations(ctx context.Context) (string, error)
	ImportConfigurations(ctx context.Context, data string, replaceExisting bool) (int, error)
	ChangeCurrency(ctx context.Context, code string) error
	ChangeLanguage(ctx context.Context, code string) error
}

type handler struct {
	logger        *zap.Logger
	service       Service
	maxImportSize int64
	version       string
}

// NewHandler constructs the router serving the API.
func NewHandler(logger *zap.Logger, service Service, maxImportSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxImportSize <= 0 {
		maxImportSize = constants.DefaultMaxImportSizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, service: service, maxImportSize: maxImportSize, version: trimmedVersion}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(h.logRequests)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/state", h.handleState)
		r.Delete("/error", h.handleClearError)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.handleAddJob)
			r.Delete("/", h.handleClearJobs)
			r.Put("/{id}", h.handleUpdateJob)
			r.Delete("/{id}", h.handleDeleteJob)
		})

		r.Route("/configurations", func(r chi.Router) {
			r.Get("/", h.handleListConfigurations)
			r.Post("/", h.handleSaveConfiguration)
			r.Post("/new", h.handleNewConfiguration)
			r.Get("/export", h.handleExport)
			r.Post("/import", h.handleImport)
			r.Post("/{id}/load", h.handleLoadConfiguration)
			r.Delete("/{id}", h.handleDeleteConfiguration)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Put("/currency", h.handleCurrency)
			r.Put("/language", h.handleLanguage)
		})
	})

	return router
}

// New wraps handler in an *http.Server listening on address.
func New(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type importResponse struct {
	Imported int           `json:"imported"`
	State    manager.State `json:"state"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleClearError(w http.ResponseWriter, r *http.Request) {
	h.service.ClearError()
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleAddJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.decodeJob(w, r, "server.handleAddJob")
	if !ok {
		return
	}
	if _, err := h.service.AddJob(r.Context(), job); err != nil {
		h.respondServiceError(w, err, "server.handleAddJob")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.service.State())
}

func (h *handler) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.decodeJob(w, r, "server.handleUpdateJob")
	if !ok {
		return
	}
	job.ID = chi.URLParam(r, "id")
	if err := h.service.UpdateJob(r.Context(), job); err != nil {
		h.respondServiceError(w, err, "server.handleUpdateJob")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "server.handleDeleteJob")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleClearJobs(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAllJobs(r.Context()); err != nil {
		h.respondServiceError(w, err, "server.handleClearJobs")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleListConfigurations(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshSavedConfigurations(r.Context()); err != nil {
		h.respondServiceError(w, err, "server.handleListConfigurations")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State().SavedConfigurations)
}

func (h *handler) handleSaveConfiguration(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decodeBody(w, r, &req, "server.handleSaveConfiguration") {
		return
	}
	if _, err := h.service.SaveConfiguration(r.Context(), req.Name); err != nil {
		h.respondServiceError(w, err, "server.handleSaveConfiguration")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.service.State())
}

// handleNewConfiguration creates a named empty favorite, or resets to an
// empty unsaved working set when no name is given.
func (h *handler) handleNewConfiguration(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if r.ContentLength != 0 && !h.decodeBody(w, r, &req, "server.handleNewConfiguration") {
		return
	}

	var err error
	if strings.TrimSpace(req.Name) == "" {
		err = h.service.CreateNewConfiguration(r.Context())
	} else {
		_, err = h.service.CreateNewConfigurationWithName(r.Context(), req.Name)
	}
	if err != nil {
		h.respondServiceError(w, err, "server.handleNewConfiguration")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.service.State())
}

func (h *handler) handleLoadConfiguration(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LoadConfiguration(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "server.handleLoadConfiguration")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleDeleteConfiguration(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteConfiguration(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err, "server.handleDeleteConfiguration")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportConfigurations(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "server.handleExport")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="configurations.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, data); err != nil {
		h.logger.Error("failed to write export",
			zap.String("op", "server.handleExport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleImport(w http.ResponseWriter, r *http.Request) {
	replace := false
	if raw := r.URL.Query().Get("replace"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid replace flag %q", raw), "server.handleImport")
			return
		}
		replace = parsed
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImportSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("import exceeds limit of %d bytes", h.maxImportSize), "server.handleImport")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read import: %v", err), "server.handleImport")
		return
	}

	n, err := h.service.ImportConfigurations(r.Context(), string(data), replace)
	if err != nil {
		h.respondServiceError(w, err, "server.handleImport")
		return
	}
	h.writeJSON(w, http.StatusOK, importResponse{Imported: n, State: h.service.State()})
}

func (h *handler) handleCurrency(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !h.decodeBody(w, r, &req, "server.handleCurrency") {
		return
	}
	if err := h.service.ChangeCurrency(r.Context(), req.Code); err != nil {
		h.respondServiceError(w, err, "server.handleCurrency")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) handleLanguage(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if !h.decodeBody(w, r, &req, "server.handleLanguage") {
		return
	}
	if err := h.service.ChangeLanguage(r.Context(), req.Code); err != nil {
		h.respondServiceError(w, err, "server.handleLanguage")
		return
	}
	h.writeJSON(w, http.StatusOK, h.service.State())
}

func (h *handler) decodeJob(w http.ResponseWriter, r *http.Request, op string) (model.Job, bool) {
	var job model.Job
	if !h.decodeBody(w, r, &job, op) {
		return model.Job{}, false
	}
	job.InputType, _ = model.ParseJobInputType(string(job.InputType))
	return job, true
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImportSize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func statusFor(err error) int {
	var validationErr *manager.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, manager.ErrEmptyName),
		errors.Is(err, manager.ErrNoJobs),
		errors.Is(err, manager.ErrDuplicateJob),
		errors.Is(err, manager.ErrUnknownCurrency),
		errors.Is(err, manager.ErrUnknownLanguage),
		errors.Is(err, store.ErrCorruptData):
		return http.StatusBadRequest
	case errors.Is(err, manager.ErrJobNotFound),
		errors.Is(err, manager.ErrConfigurationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondServiceError(w http.ResponseWriter, err error, op string) {
	h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Warn("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		)
	})
}
