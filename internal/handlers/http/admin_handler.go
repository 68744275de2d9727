package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/seed"
	"github.com/rafabene/staffdir-backend/internal/services"
)

const maxGenerateCount = 500

// AdminHandler expõe as rotas de manutenção (seed e limpeza)
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler cria um novo AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Generate popula a base com pessoas fictícias
//
//	@Summary	Seed fake people
//	@Tags		admin
//	@Produce	json
//	@Param		count	query		int	false	"how many people"	default(45)
//	@Success	201		{object}	dto.AdminResponse
//	@Router		/generate [post]
func (h *AdminHandler) Generate(c *gin.Context) {
	count := seed.DefaultCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxGenerateCount {
			c.JSON(http.StatusUnprocessableEntity, dto.NewFailResponse(c, "response.validation_failed"))
			return
		}
		count = n
	}

	inserted, err := h.adminService.Generate(c.Request.Context(), count)
	if err != nil {
		respondReadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AdminResponse{
		Success: true,
		Message: dto.T(c, "response.users_generated"),
		Count:   int64(inserted),
	})
}

// DeleteAll remove todas as pessoas
//
//	@Summary	Delete every person
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	dto.AdminResponse
//	@Router		/deleteUsers [get]
func (h *AdminHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.adminService.DeleteAll(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminResponse{
		Success: true,
		Message: dto.T(c, "response.users_deleted"),
		Count:   deleted,
	})
}
