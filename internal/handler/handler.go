package handler

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"payment-engine/internal/engine"
	"payment-engine/internal/metrics"
	"payment-engine/internal/model"
)

// Handler serves the payment-instructions endpoint. Payload schema checks
// happen here; everything past them is the engine's contract.
type Handler struct {
	log     *log.Logger
	metrics *metrics.Collector
}

func New(logger *log.Logger, collector *metrics.Collector) *Handler {
	return &Handler{log: logger, metrics: collector}
}

func (h *Handler) HandlePaymentInstructions(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.TransferRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.Instruction = strings.TrimSpace(req.Instruction)
	if req.Instruction == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Instruction must be a non-empty string")
		return
	}

	start := time.Now()
	outcome := engine.Process(&req)
	elapsed := time.Since(start)

	h.metrics.ObserveInstruction(outcome.Status, outcome.StatusCode, elapsed)
	h.log.Info("instruction processed",
		"status", outcome.Status,
		"status_code", outcome.StatusCode,
		"duration", elapsed,
	)

	httpStatus := fasthttp.StatusOK
	message := "Transaction executed successfully"
	switch outcome.Status {
	case model.StatusPending:
		message = "Transaction scheduled"
	case model.StatusFailed:
		httpStatus = fasthttp.StatusBadRequest
		message = "Transaction failed"
	}

	writeJSON(ctx, httpStatus, model.Envelope{
		Status:        outcome.Status,
		Message:       message,
		TransactionID: uuid.New().String(),
		ProcessedAt:   start.UTC().Format(time.RFC3339),
		DurationMs:    elapsed.Milliseconds(),
		Data:          outcome,
	})
}

func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		ctx.Error("Failed to encode response", fasthttp.StatusInternalServerError)
	}
}
