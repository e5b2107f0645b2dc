package handlers

import (
	"context"
	"net/http"
	"time"

	"antidoshirak/internal/adapter/http/dto/request"
	"antidoshirak/internal/adapter/http/dto/response"
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"
	"antidoshirak/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote evaluation and the text
// report export.
type QuoteHandler struct {
	quotes   usecase.IQuoteUseCase
	settings usecase.ISettingsUseCase
	catalog  *catalog.Catalog
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, settings usecase.ISettingsUseCase, cat *catalog.Catalog) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, settings: settings, catalog: cat}
}

// Evaluate computes the full derived view for the posted quote state.
func (h *QuoteHandler) Evaluate(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	state := h.resolveState(c.Request.Context(), payload)
	c.JSON(http.StatusOK, response.FromEvaluation(h.quotes.Evaluate(state)))
}

// Report renders the plain-text estimate for the posted quote state.
func (h *QuoteHandler) Report(c *gin.Context) {
	var payload request.ShareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	settings := h.settingsOrDefault(c.Request.Context())
	state := payload.QuoteRequest.ResolveState(h.catalog, settings.CustomTools, settings.HourlyRate, h.conversionRate(settings))
	branding := settings.Branding()
	if payload.ClientName != "" {
		branding.ClientName = payload.ClientName
	}

	c.JSON(http.StatusOK, response.ReportResponse{
		Report: h.quotes.TextReport(state, branding, time.Now()),
	})
}

func (h *QuoteHandler) resolveState(ctx context.Context, payload request.QuoteRequest) entities.QuoteState {
	settings := h.settingsOrDefault(ctx)
	return payload.ResolveState(h.catalog, settings.CustomTools, settings.HourlyRate, h.conversionRate(settings))
}

// The arithmetic stays available when storage is down; missing settings
// degrade to install defaults.
func (h *QuoteHandler) settingsOrDefault(ctx context.Context) entities.Settings {
	s, err := h.settings.Get(ctx)
	if err != nil {
		return entities.DefaultSettings()
	}
	return s
}

func (h *QuoteHandler) conversionRate(s entities.Settings) float64 {
	return h.quotes.ComputeConversionRate(s.PackagePriceCurrency, s.PackageTokenCount)
}
