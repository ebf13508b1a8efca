package auth

import (
	"strings"
	"time"

	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const AdminTokenExpirationTime = 12 * time.Hour

const roleAdmin = "admin"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNotAdmin     = errors.New("token does not grant admin access")
)

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func adminSecret() ([]byte, error) {
	secret := util.LoadEnvFor("ADMIN_SECRET")
	if secret == "" {
		return nil, errors.New("ADMIN_SECRET is not configured")
	}
	return []byte(secret), nil
}

// GenerateAdminToken signs a short-lived admin token. Used by ops tooling;
// there is no login flow in this service.
func GenerateAdminToken(subject string) (string, error) {
	secret, err := adminSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := AdminClaims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminTokenExpirationTime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateAdminToken parses and verifies a token and requires the admin
// role claim.
func ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	secret, err := adminSecret()
	if err != nil {
		return nil, err
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != roleAdmin {
		return nil, ErrNotAdmin
	}

	return claims, nil
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
