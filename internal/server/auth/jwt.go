// Package auth issues and verifies the short-lived service tokens the
// gateway attaches to every RPC call. The token only asserts which peer
// service is calling; end-user identity travels in the request payloads.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freshdeal/account-service/internal/common"
)

// Claims carries the standard claims plus the calling service's name.
type Claims struct {
	jwt.RegisteredClaims
	Service string
}

// GenerateServiceToken mints an HS256 token naming the calling service,
// valid for validityDuration.
func GenerateServiceToken(service string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Service: service,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetServiceFromToken verifies the token signature and expiry and returns
// the calling service's name.
func GetServiceFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Service, nil
}
