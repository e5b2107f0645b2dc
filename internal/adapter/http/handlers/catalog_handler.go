package handlers

import (
	"net/http"

	"antidoshirak/internal/adapter/http/dto/response"
	"antidoshirak/internal/domain/catalog"
	"antidoshirak/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the tool catalog.
type CatalogHandler struct {
	catalog  *catalog.Catalog
	settings usecase.ISettingsUseCase
}

func NewCatalogHandler(cat *catalog.Catalog, settings usecase.ISettingsUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: cat, settings: settings}
}

// List returns the static tool table plus the creator's custom tools.
// Custom tools are best-effort; a storage failure still serves the static
// catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	tools := h.catalog.Tools()
	if s, err := h.settings.Get(c.Request.Context()); err == nil {
		tools = append(tools, s.CustomTools...)
	}
	c.JSON(http.StatusOK, response.FromTools(tools))
}
