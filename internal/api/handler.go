package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eugenenazirov/cash-payout/internal/calculator"
	"github.com/eugenenazirov/cash-payout/internal/importer"
	"github.com/eugenenazirov/cash-payout/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const defaultBatchLimit = 1000

// Handler wires calculator and storage dependencies into HTTP handlers.
type Handler struct {
	calculator calculator.Calculator
	storage    storage.Storage
	logger     *zap.Logger

	clock      func() time.Time
	newID      func() string
	batchLimit int

	mu               sync.RWMutex
	entriesUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithIDGenerator overrides how entry identifiers are generated.
func WithIDGenerator(newID func() string) HandlerOption {
	return func(h *Handler) {
		h.newID = newID
	}
}

// WithBatchLimit caps the number of amounts accepted by a single import.
// Zero or less disables the cap.
func WithBatchLimit(limit int) HandlerOption {
	return func(h *Handler) {
		h.batchLimit = limit
	}
}

// WithLogger sets the logger used for working list events.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calc,
		storage:    store,
		logger:     zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
		newID:      uuid.NewString,
		batchLimit: defaultBatchLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.entriesUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDenominations(w http.ResponseWriter, r *http.Request) {
	_ = r
	denominations := calculator.Denominations()
	resp := denominationsResponse{
		Denominations: make([]denominationResponse, 0, len(denominations)),
	}
	for _, d := range denominations {
		resp.Denominations = append(resp.Denominations, denominationResponse{
			Value: d.Value(),
			Kind:  d.Kind(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := calculator.ValidateManual(req.Amount); err != nil {
		writeAmountError(w, err)
		return
	}

	payout, err := h.calculator.Evaluate(req.Amount)
	if err != nil {
		writeAmountError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newPayoutResponse(payout))
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	_ = r
	h.mu.RLock()
	entries, err := h.storage.List()
	updatedAt := h.entriesUpdatedAt
	h.mu.RUnlock()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := entriesResponse{
		Entries:   newEntryResponses(entries),
		Count:     len(entries),
		UpdatedAt: updatedAt,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := calculator.ValidateManual(req.Amount); err != nil {
		writeAmountError(w, err)
		return
	}

	payout, err := h.calculator.Evaluate(req.Amount)
	if err != nil {
		writeAmountError(w, err)
		return
	}

	entry := calculator.Entry{ID: h.newID(), Payout: payout}
	if err := h.updateEntries(func() error { return h.storage.Append(entry) }); err != nil {
		writeInternalError(w, err)
		return
	}

	h.logger.Info("entry added",
		zap.String("entry_id", entry.ID),
		zap.Float64("raw", entry.Raw),
		zap.Float64("rounded", entry.Rounded),
		zap.String("request_id", requestIDFromContext(r.Context())),
	)
	writeJSON(w, http.StatusCreated, newEntryResponse(entry))
}

func (h *Handler) handleImportEntries(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	amounts, err := importer.Parse(req.Data, h.batchLimit)
	if err != nil {
		var invalid *importer.InvalidTokensError
		switch {
		case errors.As(err, &invalid):
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:         "Invalid amounts",
				Details:       err.Error(),
				Suggestion:    "Correct or remove the listed values and import again",
				InvalidTokens: invalid.Tokens,
			})
		case errors.Is(err, importer.ErrNoData):
			writeError(w, http.StatusUnprocessableEntity, "No data", err.Error(),
				"Provide comma-separated amounts, for example: 4522, 5222, 6548")
		case errors.Is(err, importer.ErrTooManyAmounts):
			writeError(w, http.StatusBadRequest, "Batch too large", err.Error(), "Split the amounts into smaller batches")
		default:
			writeInternalError(w, err)
		}
		return
	}

	entries, err := calculator.BuildEntries(h.calculator, amounts, h.newID)
	if err != nil {
		writeAmountError(w, err)
		return
	}

	if err := h.updateEntries(func() error { return h.storage.Replace(entries) }); err != nil {
		writeInternalError(w, err)
		return
	}

	h.logger.Info("entries imported",
		zap.Int("count", len(entries)),
		zap.String("request_id", requestIDFromContext(r.Context())),
	)

	resp := importResponse{
		Entries: newEntryResponses(entries),
		Count:   len(entries),
		Message: "Entries imported successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleResetEntries(w http.ResponseWriter, r *http.Request) {
	if err := h.updateEntries(h.storage.Clear); err != nil {
		writeInternalError(w, err)
		return
	}

	h.logger.Info("entries reset", zap.String("request_id", requestIDFromContext(r.Context())))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	_ = r
	entries, err := h.storage.List()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newSummaryResponse(calculator.Summarize(entries)))
}

// updateEntries applies a working list mutation and stamps entriesUpdatedAt
// under one lock. A failed mutation keeps the previous timestamp.
func (h *Handler) updateEntries(mutate func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := mutate(); err != nil {
		return err
	}
	h.entriesUpdatedAt = h.clock()
	return nil
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type importRequest struct {
	Data string `json:"data"`
}

type payoutResponse struct {
	Raw        float64              `json:"raw"`
	Rounded    float64              `json:"rounded"`
	Difference decimal.Decimal      `json:"difference"`
	Breakdown  calculator.Breakdown `json:"breakdown"`
	Pieces     int                  `json:"pieces"`
}

type entryResponse struct {
	ID string `json:"id"`
	payoutResponse
}

type entriesResponse struct {
	Entries   []entryResponse `json:"entries"`
	Count     int             `json:"count"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type importResponse struct {
	Entries []entryResponse `json:"entries"`
	Count   int             `json:"count"`
	Message string          `json:"message,omitempty"`
}

type denominationShare struct {
	Value  int     `json:"value"`
	Kind   string  `json:"kind"`
	Count  int     `json:"count"`
	Amount int64   `json:"amount"`
	Share  float64 `json:"share"`
}

type summaryResponse struct {
	Count         int                  `json:"count"`
	TotalRaw      decimal.Decimal      `json:"totalRaw"`
	TotalRounded  decimal.Decimal      `json:"totalRounded"`
	RoundingDelta decimal.Decimal      `json:"roundingDelta"`
	Breakdown     calculator.Breakdown `json:"breakdown"`
	TotalPieces   int                  `json:"totalPieces"`
	CashValue     int64                `json:"cashValue"`
	Denominations []denominationShare  `json:"denominations"`
}

type denominationResponse struct {
	Value int    `json:"value"`
	Kind  string `json:"kind"`
}

type denominationsResponse struct {
	Denominations []denominationResponse `json:"denominations"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error         string   `json:"error"`
	Details       string   `json:"details,omitempty"`
	Suggestion    string   `json:"suggestion,omitempty"`
	InvalidTokens []string `json:"invalidTokens,omitempty"`
}

func newPayoutResponse(p calculator.Payout) payoutResponse {
	return payoutResponse{
		Raw:        p.Raw,
		Rounded:    p.Rounded,
		Difference: p.Difference(),
		Breakdown:  p.Breakdown,
		Pieces:     p.Breakdown.Pieces(),
	}
}

func newEntryResponse(e calculator.Entry) entryResponse {
	return entryResponse{
		ID:             e.ID,
		payoutResponse: newPayoutResponse(e.Payout),
	}
}

func newEntryResponses(entries []calculator.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newEntryResponse(e))
	}
	return out
}

func newSummaryResponse(s calculator.Summary) summaryResponse {
	resp := summaryResponse{
		Count:         s.Count,
		TotalRaw:      s.TotalRaw,
		TotalRounded:  s.TotalRounded,
		RoundingDelta: s.RoundingDelta,
		Breakdown:     s.Breakdown,
		TotalPieces:   s.Pieces(),
		CashValue:     s.CashValue(),
	}
	for _, d := range calculator.Denominations() {
		count := s.Breakdown.Count(d)
		resp.Denominations = append(resp.Denominations, denominationShare{
			Value:  d.Value(),
			Kind:   d.Kind(),
			Count:  count,
			Amount: int64(d.Value()) * int64(count),
			Share:  s.Breakdown.Share(d),
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeAmountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calculator.ErrNonPositiveAmount):
		writeError(w, http.StatusBadRequest, "Invalid amount", err.Error(), "Enter an amount greater than 0")
	case errors.Is(err, calculator.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "Invalid amount", err.Error())
	default:
		writeInternalError(w, err)
	}
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
