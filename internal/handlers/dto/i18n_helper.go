package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/handlers/middleware"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/i18n"
)

const fallbackLanguage = "en"

// T traduz messageID no idioma detectado pelo middleware.
// Sem serviço no contexto (rotas de teste, recovery) devolve o próprio ID.
//
//	dto.T(c, "validation.count", map[string]interface{}{"Max": 100})
func T(c *gin.Context, messageID string, params ...map[string]interface{}) string {
	value, _ := c.Get(middleware.I18nServiceContextKey)
	service, ok := value.(*i18n.Service)
	if !ok {
		return messageID
	}
	return service.T(GetLanguage(c), messageID, params...)
}

// GetLanguage retorna o idioma da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
