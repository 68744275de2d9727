package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
)

// SuccessResponse é o envelope de sucesso com mensagem
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FailResponse é o envelope de falha; fails só aparece em erros de validação
type FailResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Fails   map[string][]string `json:"fails,omitempty"`
}

// ErrorResponse é usado pelo lookup por id ({"error": "..."})
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewFailResponse traduz messageID para o idioma da requisição
func NewFailResponse(c *gin.Context, messageID string, params ...map[string]interface{}) FailResponse {
	return FailResponse{
		Success: false,
		Message: T(c, messageID, params...),
	}
}

// NewValidationFailResponse monta o envelope 422 com o campo que falhou
func NewValidationFailResponse(c *gin.Context, failure *errors.ValidationError, params ...map[string]interface{}) FailResponse {
	response := NewFailResponse(c, "response.validation_failed")
	response.Fails = map[string][]string{
		failure.Field: {T(c, failure.MessageID, params...)},
	}
	return response
}

// InternalErrorResponse é o corpo genérico de 500; a causa fica nos logs
func InternalErrorResponse(c *gin.Context) FailResponse {
	return NewFailResponse(c, "response.internal_error")
}
