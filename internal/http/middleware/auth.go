package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/service"
	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	SessionCookieName            = "formsg_session"
	userContextKey    contextKey = "user"
)

// SessionValidator is the part of service.AuthService the middleware needs.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.User, error)
}

// RequireAuth resolves the session cookie to a user. secure controls the
// Secure attribute of the cookie cleared on an expired session.
func RequireAuth(auth SessionValidator, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
			return
		}

		user, err := auth.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c, secure)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate session"})
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))

		c.Next()
	}
}

// WithUser stores the authenticated user on ctx and tags its logs.
func WithUser(ctx context.Context, user *model.User) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	if user != nil {
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID)})
	}
	return ctx
}

func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
