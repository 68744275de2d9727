package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/services"
)

// TokenHandler emite tokens aleatórios
type TokenHandler struct {
	tokenService *services.TokenService
}

// NewTokenHandler cria um novo TokenHandler
func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// GetToken gera um token
//
//	@Summary	Issue a random token
//	@Tags		token
//	@Produce	json
//	@Success	200	{object}	dto.TokenResponse
//	@Failure	500	{object}	dto.FailResponse
//	@Router		/token [get]
func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.tokenService.Generate()
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}
