package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/config"
	"simple-ecommerce/models"
	"simple-ecommerce/utils"
)

// AuthMiddleware resolves a bearer header or the token cookie to a
// user id. Requests without a valid token are rejected with 401.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Success: false,
					Message: "Invalid authorization header format",
				})
				c.Abort()
				return
			}
			tokenString = tokenParts[1]
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization token required",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
