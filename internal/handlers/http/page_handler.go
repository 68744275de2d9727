package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/services"
)

// PageSize é a quantidade de cartões por página HTML
const PageSize = 6

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega os templates HTML embutidos
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"photoURL": photoURL,
	}).ParseFS(templatesFS, "templates/*.html"))
}

// photoURL transforma a foto base64 em data URI; o conteúdo é sempre gerado pelo servidor
func photoURL(photo string) template.URL {
	return template.URL("data:image/jpeg;base64," + photo) //nolint:gosec
}

// PageHandler renderiza a listagem HTML
type PageHandler struct {
	userService *services.UserService
}

// NewPageHandler cria um novo PageHandler
func NewPageHandler(userService *services.UserService) *PageHandler {
	return &PageHandler{userService: userService}
}

// Index renderiza uma página da listagem. Página inválida vira 1.
func (h *PageHandler) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 || page > dto.MaxPage {
		page = 1
	}

	result, err := h.userService.ListUsers(c.Request.Context(), page, PageSize)
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.String(http.StatusInternalServerError, dto.T(c, "response.internal_error"))
		return
	}

	pages := make([]int, result.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Lang":     dto.GetLanguage(c),
		"Title":    dto.T(c, "page.title"),
		"Previous": dto.T(c, "page.previous"),
		"Next":     dto.T(c, "page.next"),
		"Empty":    dto.T(c, "page.empty"),
		"Users":    dto.ToUserResponses(result.Users),
		"Page":     page,
		"Pages":    pages,
		"HasPrev":  result.HasPrev(),
		"HasNext":  result.HasNext(),
		"PrevPage": page - 1,
		"NextPage": page + 1,
	})
}
