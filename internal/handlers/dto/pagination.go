package dto

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/staffdir-backend/internal/domain/errors"
)

const (
	DefaultPage  = 1
	DefaultCount = 10
	MaxCount     = 100

	// MaxPage mantém (page-1)*count e page+1 dentro de int
	MaxPage = math.MaxInt / MaxCount
)

// PageQuery contém os parâmetros de paginação já validados
type PageQuery struct {
	Page  int
	Count int
}

// ParsePageQuery lê page e count da query string. Ausentes usam o padrão;
// presentes precisam ser inteiros dentro dos limites.
func ParsePageQuery(c *gin.Context) (PageQuery, *errors.ValidationError) {
	query := PageQuery{Page: DefaultPage, Count: DefaultCount}

	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 || page > MaxPage {
			return query, &errors.ValidationError{Field: "page", Rule: errors.RuleInvalidPage, MessageID: "validation.page"}
		}
		query.Page = page
	}

	if raw, ok := c.GetQuery("count"); ok {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 1 || count > MaxCount {
			return query, &errors.ValidationError{Field: "count", Rule: errors.RuleInvalidCount, MessageID: "validation.count"}
		}
		query.Count = count
	}

	return query, nil
}

// PaginationParams são os parâmetros de tradução das mensagens de paginação
func PaginationParams() map[string]interface{} {
	return map[string]interface{}{"Max": MaxCount}
}

// NewLinks monta os links de navegação relativos ao base_url configurado
func NewLinks(c *gin.Context, page, count, totalPages int) Links {
	var links Links
	if page < totalPages {
		next := usersURL(c, page+1, count)
		links.NextURL = &next
	}
	if page > 1 {
		prev := usersURL(c, page-1, count)
		links.PrevURL = &prev
	}
	return links
}

func usersURL(c *gin.Context, page, count int) string {
	return fmt.Sprintf("%s/users?page=%d&count=%d", c.GetString("base_url"), page, count)
}
