package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/authz"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextToken    = "token"
	ContextClaims   = "claims"
)

func AuthMiddleware(issuer *auth.Issuer, blacklist session.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		tokenString := strings.TrimSpace(parts[1])

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			abortUnauthorized(c, "invalid_token")
			return
		}

		revoked, err := blacklist.Revoked(c.Request.Context(), tokenString)
		if err != nil {
			log.Printf("auth: blacklist lookup: %v", err)
			c.Abort()
			httperr.Internal(c, "internal_error", "Erro interno no servidor.")
			return
		}
		if revoked {
			abortUnauthorized(c, "token_revoked")
			return
		}

		userID, _ := claims.UserID()

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextToken, tokenString)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code string) {
	c.Abort()
	httperr.Unauthorized(c, code, "Não autenticado.")
}

// Actor lê o usuário autenticado do contexto.
func Actor(c *gin.Context) authz.Actor {
	id, _ := c.Get(ContextUserID)
	role, _ := c.Get(ContextUserRole)

	userID, _ := id.(uint)
	r, _ := role.(string)
	return authz.Actor{UserID: userID, Role: r}
}

// RequireRole barra quem não tiver um dos papéis.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.Abort()
		httperr.Forbidden(c, "forbidden", httperr.Message("forbidden"))
	}
}
