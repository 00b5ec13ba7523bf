package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro-api/internal/auth"
)

const (
	ContextAccountID   = "accountID"
	ContextAccountKind = "accountKind"
)

// AuthMiddleware valida o Bearer token e injeta a identidade no
// contexto. Ele NÃO compara o id do token com o :id da rota: qualquer
// conta autenticada acessa sub-recursos de outra conta (limitação
// herdada do backend original, documentada no DESIGN.md).
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		ident, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextAccountID, ident.ID)
		c.Set(ContextAccountKind, ident.Kind)

		c.Next()
	}
}
