package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/models"
	srvErrors "github.com/learnloop/academy/pkg/errors"
)

const identityContextKey = "identity"

// Authenticator resolves the caller identity of a request. With
// authentication disabled every request runs as the configured dev user.
type Authenticator struct {
	validator *Validator
	enabled   bool
	devUser   models.Learner
	log       *zap.SugaredLogger
}

func NewAuthenticator(cfg config.Authentication) *Authenticator {
	return &Authenticator{
		validator: NewValidator(cfg.JWTSecret),
		enabled:   cfg.Enabled,
		devUser:   models.Learner{UserID: cfg.DevUser, Name: cfg.DevUser},
		log:       zap.S().Named("auth"),
	}
}

// Required aborts with 401 when the request carries no valid identity.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		learner, err := a.identify(c)
		if err != nil {
			a.log.Debugw("request rejected", "path", c.FullPath(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(identityContextKey, learner)
		c.Next()
	}
}

// Optional sets the identity when a valid token is present and lets the
// request through otherwise.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if learner, err := a.identify(c); err == nil {
			c.Set(identityContextKey, learner)
		}
		c.Next()
	}
}

func (a *Authenticator) identify(c *gin.Context) (models.Learner, error) {
	if !a.enabled {
		return a.devUser, nil
	}

	claims, err := a.validator.Validate(bearerToken(c))
	if err != nil {
		return models.Learner{}, err
	}
	return models.Learner{UserID: claims.Subject, Name: claims.Name, ImageSrc: claims.Picture}, nil
}

// FromContext returns the identity set by Required or Optional.
func FromContext(c *gin.Context) (models.Learner, bool) {
	val, ok := c.Get(identityContextKey)
	if !ok {
		return models.Learner{}, false
	}
	learner, ok := val.(models.Learner)
	return learner, ok
}

// MustFromContext returns an UnauthorizedError when no identity was set.
func MustFromContext(c *gin.Context) (models.Learner, error) {
	learner, ok := FromContext(c)
	if !ok {
		return learner, srvErrors.NewUnauthorizedError("unauthorized")
	}
	return learner, nil
}

// SetIdentity stores learner as the caller identity of c.
func SetIdentity(c *gin.Context, learner models.Learner) {
	c.Set(identityContextKey, learner)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
