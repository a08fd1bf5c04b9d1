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

var errInvalidMenuPayload = pkg.NewDomainErrorSimple("INVALID_MENU_PAYLOAD", "Invalid menu item payload", http.StatusBadRequest)

// MenuHandler handles the storefront catalog listing and the admin catalog
// mutations.

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

// ListMenu returns the catalog. The storefront passes ?available=true to hide
// items taken off sale; the admin area lists everything.
func (h *MenuHandler) ListMenu(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	items, err := h.usecase.List(c.Request.Context(), onlyAvailable)
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var payload request.MenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMenuItem(created))
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	var payload request.MenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMenuItem(updated))
}

// DeleteMenuItem removes a catalog entry. Deleting an id that is already gone
// still answers 204.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenuItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
