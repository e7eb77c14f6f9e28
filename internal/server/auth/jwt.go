// Package auth resolves caller identities. Access tokens are HS256 JWTs
// issued by an external identity provider that shares the server secret;
// the principal travels in the UserID claim.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered claims plus the caller principal.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func GenerateToken(p models.Principal, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: string(p),
	})

	return token.SignedString(secretKey)
}

// PrincipalFromToken validates tokenString and returns its principal.
// Every failure is reported as common.ErrInvalidToken.
func PrincipalFromToken(tokenString string, secretKey []byte) (models.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token expired", common.ErrInvalidToken)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return models.Principal(claims.UserID), nil
}
