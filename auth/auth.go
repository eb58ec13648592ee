package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in an issued token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
}

// TokenService signs and verifies bearer tokens with an HS256 secret injected
// at construction.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// CreateToken issues a token embedding the username and user id.
// TODO: set an expiry on issued tokens.
func (s *TokenService) CreateToken(username, userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		UserID:   userID,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the embedded claims.
func (s *TokenService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
