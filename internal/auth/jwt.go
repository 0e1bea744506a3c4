package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	srvErrors "github.com/learnloop/academy/pkg/errors"
)

const leeway = 5 * time.Second

// Claims are the identity provider token claims. The subject is the user id.
type Claims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Validator verifies and issues HS256 tokens signed with a shared secret.
type Validator struct {
	secret []byte
	now    func() time.Time
}

func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(strings.TrimSpace(secret)), now: time.Now}
}

func (v *Validator) Validate(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, srvErrors.NewUnauthorizedError("missing token")
	}
	if len(v.secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithLeeway(leeway), jwt.WithTimeFunc(v.now))
	if err != nil {
		return nil, srvErrors.NewUnauthorizedError(fmt.Sprintf("invalid token: %v", err))
	}
	if !parsed.Valid {
		return nil, srvErrors.NewUnauthorizedError("invalid token")
	}
	if claims.Subject == "" {
		return nil, srvErrors.NewUnauthorizedError("invalid token: missing subject")
	}

	return claims, nil
}

// Issue signs a token for subject valid for ttl. It is used by the CLI to
// mint development tokens.
func (v *Validator) Issue(subject, name, picture string, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", errors.New("jwt secret not configured")
	}

	now := v.now()
	claims := Claims{
		Name:    name,
		Picture: picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
