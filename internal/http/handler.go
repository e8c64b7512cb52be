package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davidbz/feequote/internal/domain"
	"github.com/davidbz/feequote/internal/observability"
)

// RequesterHeader carries the authenticated sponsor ID set by the upstream gateway.
const RequesterHeader = "X-Requester-Id"

// Handler handles HTTP requests.
type Handler struct {
	quotes *domain.QuoteService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService) *Handler {
	return &Handler{
		quotes: quotes,
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type redeemRequest struct {
	Signature string `json:"signature"`
}

type scheduleResponse struct {
	Version string                `json:"version"`
	Items   []domain.ScheduleItem `json:"items"`
}

// HandleEstimate prices a campaign and returns a signed fee estimate.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID := r.Header.Get(RequesterHeader)
	if requesterID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + RequesterHeader + " header"})
		return
	}
	ctx = observability.WithRequesterID(ctx, requesterID)

	var req domain.FeeEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid request body",
			Fields: map[string]string{"body": err.Error()},
		})
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("fee estimate requested",
		observability.Stringer("budget", req.CampaignBudget),
		observability.String("complexity", req.Complexity),
		observability.Bool("use_aw3_token", req.UseAW3Token),
		observability.Int("kpi_metrics", len(req.KPIMetrics)),
	)

	estimate, err := h.quotes.Estimate(ctx, requesterID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

// HandleRedeem verifies and consumes a fee estimate at campaign creation time.
func (h *Handler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID := r.Header.Get(RequesterHeader)
	if requesterID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + RequesterHeader + " header"})
		return
	}

	var body redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid request body",
			Fields: map[string]string{"body": err.Error()},
		})
		return
	}

	estimate, err := h.quotes.Redeem(ctx, requesterID, r.PathValue("id"), body.Signature)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

// HandleSchedule lists the fee schedule options currently in force.
func (h *Handler) HandleSchedule(w http.ResponseWriter, _ *http.Request) {
	schedule := h.quotes.Schedule()
	writeJSON(w, http.StatusOK, scheduleResponse{
		Version: schedule.Version(),
		Items:   schedule.Items(),
	})
}

// HandlePutProfile records a requester's reputation and spend profile.
func (h *Handler) HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.RequesterProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid request body",
			Fields: map[string]string{"body": err.Error()},
		})
		return
	}

	if err := h.quotes.UpsertProfile(r.Context(), r.PathValue("id"), profile); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// writeError maps domain errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *domain.InvalidInputError

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid input",
			Fields: map[string]string{invalid.Field: invalid.Reason},
		})
	case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrQuoteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrQuoteRequesterMismatch):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrQuoteExpired):
		writeJSON(w, http.StatusGone, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrQuoteTampered):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		observability.FromContext(r.Context()).Error("request failed", observability.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it.
		return
	}
}
