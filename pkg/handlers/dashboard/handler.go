package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/de-tools/campaign-dash/pkg/adapters"
	"github.com/de-tools/campaign-dash/pkg/models/api"
	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Renderer turns a chart specification into an image.
type Renderer interface {
	Render(spec domain.ChartSpec, w io.Writer) error
}

type Handler struct {
	svc      dashboard.Service
	renderer Renderer
}

func NewHandler(svc dashboard.Service, renderer Renderer) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
	}
}

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapBoundsDomainToApi(h.svc.Bounds()))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	criteria, opts, err := h.parse(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dash, err := h.svc.Build(ctx, criteria, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapDashboardDomainToApi(*dash))
}

func (h *Handler) GetChartImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	chartID := chi.URLParam(r, "chart")

	criteria, opts, err := h.parse(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	spec, err := h.svc.Chart(ctx, chartID, criteria, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(spec, &buf); err != nil {
		logger.Error().Err(err).Str("chart", chartID).Msg("failed to render chart")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().Err(err).Str("chart", chartID).Msg("failed to write chart image")
	}
}

func (h *Handler) parse(r *http.Request) (domain.FilterCriteria, dashboard.ViewOptions, error) {
	q := r.URL.Query()
	criteria, err := ParseCriteria(q, h.svc.DefaultCriteria())
	if err != nil {
		return criteria, dashboard.ViewOptions{}, err
	}
	opts, err := ParseViewOptions(q)
	return criteria, opts, err
}

func statusFor(err error) int {
	var badParam *BadParamError
	var invalid *domain.InvalidCriteriaError
	switch {
	case errors.As(err, &badParam), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownChart):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("dashboard request failed")
		msg = http.StatusText(status)
	}
	writeJSON(w, r, status, api.Error{Error: msg})
}

// writeJSON encodes before writing the header so an encoding failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(api.Error{Error: http.StatusText(status)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to write response")
	}
}
