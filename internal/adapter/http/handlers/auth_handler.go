package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/dto/request"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase"
	"github.com/jean-devbr/Atendimento-lanche/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_PAYLOAD", "Invalid login payload", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
)

// AuthHandler gates the admin area. There is no session or token; the client
// only learns whether the credential pair matched.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			log.Printf("[auth][handler] login rejected username=%q", payload.Username)
			c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
