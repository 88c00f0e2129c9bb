package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/clients"
	"tutorlift_backend/internal/config"
	"tutorlift_backend/internal/logger"
)

type authClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware authenticates the bearer token and checks account
// standing at the identity provider. Unverified emails are only let
// through outside production so staging accounts stay usable.
func AuthMiddleware(cfg *config.Config, identity clients.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}
		userID := claims.Subject

		account, err := identity.GetUser(c.Request.Context(), userID)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("identity lookup failed",
				"user_id", userID, "error", err)
			// A provider 4xx means the token names no usable account.
			// Anything else, a provider 5xx or the network being down,
			// is our outage, not the caller's.
			var provErr *clients.ProviderError
			if errors.As(err, &provErr) && provErr.ClientFault() {
				apperrors.HandleError(c, apperrors.ErrUnauthorized)
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}
		if account.Disabled {
			apperrors.HandleError(c, apperrors.ErrAccountDisabled)
			return
		}
		if cfg.IsProduction() && !account.EmailVerified {
			apperrors.HandleError(c, apperrors.ErrEmailUnverified)
			return
		}

		email := account.Email
		if email == "" {
			email = claims.Email
		}

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
