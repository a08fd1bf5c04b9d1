package handlers

import (
	"net/http"

	request "github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/dto/request"
	response "github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/dto/response"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase"
	"github.com/jean-devbr/Atendimento-lanche/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFooterPayload = pkg.NewDomainErrorSimple("INVALID_FOOTER_PAYLOAD", "Invalid footer payload", http.StatusBadRequest)

// FooterHandler handles the footer configuration singleton.

type FooterHandler struct {
	usecase usecase.IFooterUseCase
}

func NewFooterHandler(uc usecase.IFooterUseCase) *FooterHandler {
	return &FooterHandler{usecase: uc}
}

func (h *FooterHandler) GetFooter(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFooterConfig(cfg))
}

// UpdateFooter replaces the whole configuration record.
func (h *FooterHandler) UpdateFooter(c *gin.Context) {
	var payload request.FooterConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFooterPayload.HTTPStatus, errInvalidFooterPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFooterConfig(updated))
}
