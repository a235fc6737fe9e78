package utils

import (
	"errors"

	"evently/config"

	"github.com/golang-jwt/jwt"
)

// Claims extracted from a bearer token. Token issuance lives in the identity
// service; this core only validates.
type AuthClaims struct {
	StaffID string
	Role    string
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractClaimsFromToken validates a token and pulls the subject (staff id)
// and role claims out of it.
func ExtractClaimsFromToken(tokenString string) (AuthClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return AuthClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return AuthClaims{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return AuthClaims{}, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = "staff"
	}

	return AuthClaims{StaffID: sub, Role: role}, nil
}
