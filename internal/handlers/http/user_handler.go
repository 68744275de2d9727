package http

import (
	"context"
	errs "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/validation"
	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	registration *services.RegistrationService
	userService  *services.UserService
	logger       ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(registration *services.RegistrationService, userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		registration: registration,
		userService:  userService,
		logger:       logger,
	}
}

// Register registra uma nova pessoa
//
//	@Summary	Register a person
//	@Tags		users
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		name		formData	string	true	"2..60 characters"
//	@Param		email		formData	string	true	"email address"
//	@Param		phone		formData	string	true	"+380XXXXXXXXX"
//	@Param		position	formData	string	true	"position id"
//	@Param		photo		formData	file	true	"JPEG up to 5 MB"
//	@Success	201	{object}	dto.RegisterResponse
//	@Failure	409	{object}	dto.FailResponse
//	@Failure	422	{object}	dto.FailResponse
//	@Failure	500	{object}	dto.FailResponse
//	@Failure	504	{object}	dto.FailResponse
//	@Router		/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		h.respondBindError(c, err)
		return
	}

	input := validation.RegistrationInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Photo:    photoUpload(c),
	}

	// o registro segue mesmo se o cliente desconectar; o limite é o timeout do serviço
	result, err := h.registration.Register(context.WithoutCancel(c.Request.Context()), input)
	if err != nil {
		h.respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		UserID:  result.PersonID,
		Message: dto.T(c, "response.user_registered"),
	})
}

func photoUpload(c *gin.Context) *validation.PhotoUpload {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil
	}
	return &validation.PhotoUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Open: func() (io.ReadCloser, error) {
			return file.Open()
		},
	}
}

func (h *UserHandler) respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errs.As(err, &tooLarge) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationFailResponse(c, &errors.ValidationError{
			Field:     "photo",
			Rule:      errors.RulePhotoTooLarge,
			MessageID: "validation.photo_size",
		}))
		return
	}
	c.Error(err) //nolint:errcheck
	c.JSON(http.StatusUnprocessableEntity, dto.NewFailResponse(c, "response.validation_failed"))
}

func (h *UserHandler) respondRegisterError(c *gin.Context, err error) {
	var failure *errors.ValidationError
	switch {
	case errs.As(err, &failure):
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationFailResponse(c, failure))
	case errs.Is(err, errors.ErrPersonAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewFailResponse(c, errors.ErrPersonAlreadyExists.Error()))
	case errs.Is(err, errors.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.NewFailResponse(c, errors.ErrTimeout.Error()))
	default:
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
	}
}

// ListUsers lista usuários paginados
//
//	@Summary	List people
//	@Tags		users
//	@Produce	json
//	@Param		page	query		int	false	"page number (>= 1)"	default(1)
//	@Param		count	query		int	false	"page size (1..100)"	default(10)
//	@Success	200		{object}	dto.UsersResponse
//	@Failure	422		{object}	dto.FailResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	query, failure := dto.ParsePageQuery(c)
	if failure != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationFailResponse(c, failure, dto.PaginationParams()))
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), query.Page, query.Count)
	if err != nil {
		respondReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UsersResponse{
		Success:    true,
		TotalPages: page.TotalPages,
		TotalUsers: page.Total,
		Count:      query.Count,
		Page:       query.Page,
		Links:      dto.NewLinks(c, query.Page, query.Count, page.TotalPages),
		Users:      dto.ToUserResponses(page.Users),
	})
}

// GetUser busca um usuário por ID
//
//	@Summary	Get a person by id
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"person id"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		respondUserNotFound(c)
		return
	}

	person, err := h.userService.GetUser(c.Request.Context(), uint(id))
	if errs.Is(err, errors.ErrPersonNotFound) {
		respondUserNotFound(c)
		return
	}
	if err != nil {
		respondReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(person))
}

func respondUserNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: dto.T(c, errors.ErrPersonNotFound.Error())})
}

// respondReadError trata falhas de infraestrutura nas rotas de leitura
func respondReadError(c *gin.Context, err error) {
	c.Error(err) //nolint:errcheck
	if errs.Is(err, errors.ErrTimeout) {
		c.JSON(http.StatusGatewayTimeout, dto.NewFailResponse(c, errors.ErrTimeout.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
}
