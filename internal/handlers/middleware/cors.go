package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação. "*" libera qualquer origem sem
// credenciais; uma lista vazia desliga o middleware.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range strings.Split(allowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "*":
			config.AllowAllOrigins = true
		case strings.HasPrefix(origin, "http://"), strings.HasPrefix(origin, "https://"):
			config.AllowOrigins = append(config.AllowOrigins, origin)
		}
	}

	if config.AllowAllOrigins {
		config.AllowOrigins = nil
	} else if len(config.AllowOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	} else {
		config.AllowCredentials = true
	}

	return cors.New(config)
}
