package handlers

import (
	"errors"
	"net/http"

	"antidoshirak/internal/adapter/http/dto/request"
	"antidoshirak/internal/adapter/http/dto/response"
	"antidoshirak/internal/usecase"
	"antidoshirak/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler handles creator settings reads and updates.
type SettingsHandler struct {
	settings usecase.ISettingsUseCase
}

func NewSettingsHandler(settings usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the stored settings (or install defaults) with the derived
// rate fields.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rate, err := h.settings.ConversionRate(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(s, rate))
}

// Update replaces the stored settings. The response carries what was
// actually saved, after the hourly-rate floor was applied.
func (h *SettingsHandler) Update(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	saved, err := h.settings.Update(c.Request.Context(), payload.ResolveSettings())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rate, err := h.settings.ConversionRate(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(saved, rate))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettings):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid settings values", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
