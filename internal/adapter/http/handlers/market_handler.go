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

var errInvalidMarketPayload = pkg.NewDomainErrorSimple("INVALID_MARKET_INPUT", "Invalid market comparison payload", http.StatusBadRequest)

// MarketHandler handles market benchmark requests.
type MarketHandler struct {
	market usecase.IMarketUseCase
}

func NewMarketHandler(market usecase.IMarketUseCase) *MarketHandler {
	return &MarketHandler{market: market}
}

// Services returns the published benchmark table.
func (h *MarketHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMarketRates(h.market.Services()))
}

// Compare places the posted price against one service's tier bands, scaled
// to the volume detected in the item list.
func (h *MarketHandler) Compare(c *gin.Context) {
	var payload request.MarketCompareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMarketPayload.HTTPStatus, errInvalidMarketPayload.ToHTTPError())
		return
	}

	cmp, err := h.market.Compare(payload.ServiceID, payload.ResolveItems(), payload.Price)
	if err != nil {
		appErr := mapMarketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMarketComparison(cmp))
}

func mapMarketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMarketServiceNotFound):
		return pkg.NewDomainErrorSimple("MARKET_SERVICE_NOT_FOUND", "Market service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
