package utils

import (
	"errors"
	"time"

	"wellnest/config"

	"github.com/golang-jwt/jwt"
)

// Roles carried in the "role" claim.
const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// TokenClaims is the subset of claims the API relies on.
type TokenClaims struct {
	UserID         string
	Role           string
	ProfessionalID string
}

func secretKey() ([]byte, error) {
	if config.AppConfig.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken creates a signed HS256 token. Login lives in the account service;
// this is used by tooling and tests.
func GenerateToken(claims TokenClaims, duration time.Duration) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	mc := jwt.MapClaims{
		"sub":  claims.UserID,
		"role": claims.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	if claims.ProfessionalID != "" {
		mc["professionalId"] = claims.ProfessionalID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mc["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := mc["role"].(string)
	professionalID, _ := mc["professionalId"].(string)

	return &TokenClaims{UserID: sub, Role: role, ProfessionalID: professionalID}, nil
}
