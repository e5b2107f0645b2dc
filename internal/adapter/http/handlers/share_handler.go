package handlers

import (
	"net/http"

	"antidoshirak/internal/adapter/http/dto/request"
	"antidoshirak/internal/adapter/http/dto/response"
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase"
	"antidoshirak/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSharePayload = pkg.NewDomainErrorSimple("INVALID_SHARE_INPUT", "Invalid share payload", http.StatusBadRequest)

// ShareHandler handles encoding quotes into share codes and restoring them.
type ShareHandler struct {
	share    usecase.IShareUseCase
	quotes   usecase.IQuoteUseCase
	settings usecase.ISettingsUseCase
	catalog  *catalog.Catalog
}

func NewShareHandler(share usecase.IShareUseCase, quotes usecase.IQuoteUseCase, settings usecase.ISettingsUseCase, cat *catalog.Catalog) *ShareHandler {
	return &ShareHandler{share: share, quotes: quotes, settings: settings, catalog: cat}
}

// Share encodes the posted quote state plus the creator's branding into a
// portable code and URL.
func (h *ShareHandler) Share(c *gin.Context) {
	var payload request.ShareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSharePayload.HTTPStatus, errInvalidSharePayload.ToHTTPError())
		return
	}

	settings := h.settingsOrDefault(c)
	state := payload.QuoteRequest.ResolveState(h.catalog, settings.CustomTools, settings.HourlyRate,
		h.quotes.ComputeConversionRate(settings.PackagePriceCurrency, settings.PackageTokenCount))

	branding := settings.Branding()
	if payload.ClientName != "" {
		branding.ClientName = payload.ClientName
	}

	c.JSON(http.StatusOK, response.FromShareLink(h.share.Encode(state, branding)))
}

// Restore decodes whatever the user pasted. This endpoint never rejects
// its input; anything undecodable comes back as a guest-mode quote.
func (h *ShareHandler) Restore(c *gin.Context) {
	var payload request.RestoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSharePayload.HTTPStatus, errInvalidSharePayload.ToHTTPError())
		return
	}

	restored := h.share.Decode(payload.Input)
	c.JSON(http.StatusOK, response.FromRestoredQuote(restored, h.quotes.Evaluate(restored.State)))
}

func (h *ShareHandler) settingsOrDefault(c *gin.Context) entities.Settings {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		return entities.DefaultSettings()
	}
	return s
}
