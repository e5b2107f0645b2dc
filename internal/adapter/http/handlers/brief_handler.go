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

var errInvalidBriefPayload = pkg.NewDomainErrorSimple("INVALID_BRIEF_INPUT", "Invalid brief payload", http.StatusBadRequest)

// BriefHandler handles brief parsing requests.
type BriefHandler struct {
	briefs usecase.IBriefUseCase
}

func NewBriefHandler(briefs usecase.IBriefUseCase) *BriefHandler {
	return &BriefHandler{briefs: briefs}
}

// Parse runs the posted brief text through the external parser and merges
// the recognized tools into the posted item list.
func (h *BriefHandler) Parse(c *gin.Context) {
	var payload request.BriefRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBriefPayload.HTTPStatus, errInvalidBriefPayload.ToHTTPError())
		return
	}

	attachment, err := payload.ResolveAttachment()
	if err != nil {
		c.JSON(errInvalidBriefPayload.HTTPStatus, errInvalidBriefPayload.ToHTTPError())
		return
	}

	result, err := h.briefs.ProcessBrief(c.Request.Context(), payload.Brief, attachment, payload.ResolveItems())
	if err != nil {
		appErr := mapBriefError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBriefResult(result))
}

func mapBriefError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyBrief):
		return pkg.NewDomainErrorSimple("EMPTY_BRIEF", "Brief text or attachment is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBriefParserConfigured):
		return pkg.NewDomainErrorSimple("BRIEF_PARSER_DISABLED", "Brief parser is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("BRIEF_PARSER_FAILED", "Brief parsing failed", err, http.StatusBadGateway)
	}
}
