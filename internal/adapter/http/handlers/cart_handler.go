package handlers

import (
	"errors"
	"net/http"

	request "github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/dto/request"
	response "github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/dto/response"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase"
	"github.com/jean-devbr/Atendimento-lanche/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_PAYLOAD", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles the shopping cart endpoints.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	lines, total, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(lines, total))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddItem(c.Request.Context(), payload.MenuItemID, payload.Quantity, payload.Observations)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCartLine(line))
}

// UpdateQuantity sets a line quantity. A quantity of zero or below removes
// the line and answers 204, the same as deleting it.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.UpdateQuantity(c.Request.Context(), c.Param("id"), *payload.Quantity)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if line.ID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromCartLine(line))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenuItemID), errors.Is(err, usecase.ErrInvalidCartLineID), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
