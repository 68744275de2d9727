package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/services"
)

// PositionHandler expõe os cargos distintos
type PositionHandler struct {
	positionService *services.PositionService
}

// NewPositionHandler cria um novo PositionHandler
func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// ListPositions lista os cargos distintos
//
//	@Summary	List distinct positions
//	@Tags		positions
//	@Produce	json
//	@Success	200	{object}	dto.PositionsResponse
//	@Failure	422	{object}	dto.FailResponse
//	@Router		/positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	positions, err := h.positionService.ListPositions(c.Request.Context())
	if errs.Is(err, errors.ErrPositionsNotFound) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewFailResponse(c, errors.ErrPositionsNotFound.Error()))
		return
	}
	if err != nil {
		respondReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PositionsResponse{
		Success:   true,
		Positions: dto.ToPositionResponses(positions),
	})
}
