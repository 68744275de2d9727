package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
)

const defaultBaseURL = "http://localhost:3000"

// BaseURL retorna o prefixo configurado para links e tipos de problema
func BaseURL(c *gin.Context) string {
	if baseURL := c.GetString("base_url"); baseURL != "" {
		return baseURL
	}
	return defaultBaseURL
}

// AbortWithProblem responde com um documento RFC 7807 (application/problem+json)
func AbortWithProblem(c *gin.Context, status int, problemType, titleKey string) {
	problem := problems.NewDetailedProblem(status, c.Request.Method+" "+c.Request.URL.Path)
	problem.Type = BaseURL(c) + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}

// NotFoundProblem é o handler de rotas inexistentes
func NotFoundProblem(c *gin.Context) {
	AbortWithProblem(c, http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title")
}

// MethodNotAllowedProblem é o handler de métodos não suportados
func MethodNotAllowedProblem(c *gin.Context) {
	AbortWithProblem(c, http.StatusMethodNotAllowed, errors.ProblemTypeMethodNotAllowed, "error.method_not_allowed.title")
}
