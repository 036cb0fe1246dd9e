// Package api serves the statement parser over HTTP.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/insightdelivered/card-statement-parser/internal/logger"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/service"
	"github.com/insightdelivered/card-statement-parser/internal/writer"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ParseResponse is the JSON response from the parse endpoint.
type ParseResponse struct {
	Success     bool                    `json:"success"`
	Error       string                  `json:"error,omitempty"`
	RequestID   string                  `json:"requestId,omitempty"`
	Issuer      string                  `json:"issuer,omitempty"`
	Valid       bool                    `json:"valid"`
	Missing     []string                `json:"missing,omitempty"`
	Statement   *models.StatementRecord `json:"statement,omitempty"`
	CSV         string                  `json:"csv,omitempty"`
	TotalDebit  decimal.Decimal         `json:"totalDebit"`
	TotalCredit decimal.Decimal         `json:"totalCredit"`
	Count       int                     `json:"count"`
	Version     string                  `json:"version,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	svc     *service.Service
	metrics *Metrics
	log     zerolog.Logger
	timeout time.Duration
	version string
}

// NewHandler returns handlers backed by svc.
func NewHandler(svc *service.Service, metrics *Metrics, opts Options) *Handler {
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handler{
		svc:     svc,
		metrics: metrics,
		log:     opts.Logger,
		timeout: opts.ParseTimeout,
		version: opts.Version,
	}
}

// RegisterRoutes sets up the routes under /api/statements and /metrics.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/api/statements")
	g.Post("/parse", h.HandleParse)
	g.Post("/debug", h.HandleDebug)
	g.Get("/supported-issuers", h.HandleSupportedIssuers)
	g.Get("/health", h.HandleHealth)

	app.Get("/metrics", h.metrics.Handler())
}

// HandleHealth handles GET /api/statements/health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleSupportedIssuers handles GET /api/statements/supported-issuers
func (h *Handler) HandleSupportedIssuers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"issuers": h.svc.Registry().Issuers(),
	})
}

// HandleParse handles POST /api/statements/parse. The form carries the PDF
// in "file" and optionally an "issuer" name that skips detection.
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	started := time.Now()
	reqID := requestID(c)
	log := h.log.With().Str("request_id", reqID).Logger()

	data, filename, ferr := uploadedPDF(c)
	if ferr != nil {
		log.Info().Str("reason", ferr.Message).Msg("upload rejected")
		return writeError(c, ferr.Code, reqID, ferr.Message)
	}
	issuerParam := strings.TrimSpace(c.FormValue("issuer"))
	includeHeader := c.FormValue("header") != "false"

	ctx, cancel := h.parseContext(c, log)
	defer cancel()

	log.Info().Str("file", filename).Int("bytes", len(data)).Str("issuer", issuerParam).Msg("parsing statement")
	record, err := h.svc.ParseBytesAs(ctx, data, issuerParam)
	switch {
	case errors.Is(err, service.ErrInvalidDocument):
		h.metrics.observe("", outcomeInvalidDocument, started)
		return writeError(c, fiber.StatusBadRequest, reqID, "Could not read the uploaded PDF.")
	case errors.Is(err, service.ErrUnknownIssuer):
		h.metrics.observe("", outcomeError, started)
		return writeError(c, fiber.StatusBadRequest, reqID,
			fmt.Sprintf("Unknown issuer %q. Supported: %s.", issuerParam, strings.Join(h.svc.Registry().Issuers(), ", ")))
	case errors.Is(err, context.DeadlineExceeded):
		h.metrics.observe("", outcomeError, started)
		return writeError(c, fiber.StatusGatewayTimeout, reqID, "Parsing timed out.")
	case err != nil:
		h.metrics.observe("", outcomeError, started)
		log.Error().Err(err).Msg("parse failed")
		return writeError(c, fiber.StatusInternalServerError, reqID, "Parsing failed.")
	case record == nil:
		h.metrics.observe("", outcomeNoIssuer, started)
		return writeError(c, fiber.StatusUnprocessableEntity, reqID, "Could not detect the card issuer of this statement.")
	}

	outcome := outcomePartial
	if record.IsValid() {
		outcome = outcomeValid
	}
	h.metrics.observe(record.IssuerName, outcome, started)

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := csvWriter.Write(&csvBuf, record); err != nil {
		log.Error().Err(err).Msg("CSV generation failed")
		return writeError(c, fiber.StatusInternalServerError, reqID, "CSV generation failed.")
	}

	debit, credit := totals(record.Transactions)
	return c.JSON(ParseResponse{
		Success:     true,
		RequestID:   reqID,
		Issuer:      record.IssuerName,
		Valid:       record.IsValid(),
		Missing:     record.Missing(),
		Statement:   record,
		CSV:         csvBuf.String(),
		TotalDebit:  debit,
		TotalCredit: credit,
		Count:       len(record.Transactions),
		Version:     h.version,
	})
}

// HandleDebug handles POST /api/statements/debug. It reports what the
// extractor sees without running a strategy.
func (h *Handler) HandleDebug(c *fiber.Ctx) error {
	reqID := requestID(c)
	log := h.log.With().Str("request_id", reqID).Logger()

	data, _, ferr := uploadedPDF(c)
	if ferr != nil {
		return writeError(c, ferr.Code, reqID, ferr.Message)
	}

	ctx, cancel := h.parseContext(c, log)
	defer cancel()

	in, err := h.svc.InspectBytes(ctx, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			return writeError(c, fiber.StatusBadRequest, reqID, "Could not read the uploaded PDF.")
		}
		log.Error().Err(err).Msg("inspect failed")
		return writeError(c, fiber.StatusInternalServerError, reqID, "Inspection failed.")
	}
	return c.JSON(in)
}

func (h *Handler) parseContext(c *fiber.Ctx, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx := logger.WithContext(c.UserContext(), log)
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

// uploadedPDF reads the "file" form field and checks it is a PDF by name.
func uploadedPDF(c *fiber.Ctx) ([]byte, string, *fiber.Error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file.")
	}
	return data, fh.Filename, nil
}

// totals sums debits (fees included) and credits.
func totals(txns []models.Transaction) (debit, credit decimal.Decimal) {
	for _, txn := range txns {
		if txn.Type == models.Credit {
			credit = credit.Add(txn.Amount)
		} else {
			debit = debit.Add(txn.Amount)
		}
	}
	return debit, credit
}

// requestID returns the ID set by the request ID middleware, or a new one.
func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func writeError(c *fiber.Ctx, status int, reqID, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success:   false,
		Error:     msg,
		RequestID: reqID,
	})
}
