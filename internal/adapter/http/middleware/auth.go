package middleware

import (
	"log"
	"net/http"
	"strings"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication credentials were not provided or are invalid", http.StatusUnauthorized)

// RequireAuth validates the bearer token on every request of the group
// and stores the authenticated user in the gin context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
