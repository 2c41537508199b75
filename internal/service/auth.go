package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Antonio12313/mexase-api/internal/types"
)

var ErrInvalidToken = errors.New("invalid token")

// AuthService validates the record API's bearer tokens and proxies logins.
// Credentials are never stored here; the record API owns the accounts.
type AuthService struct {
	api       RecordAPI
	jwtSecret string
}

func NewAuthService(api RecordAPI, jwtSecret string) *AuthService {
	return &AuthService{
		api:       api,
		jwtSecret: jwtSecret,
	}
}

// Login forwards the credentials to the record API and returns its token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.api.Login(ctx, email, password)
}

// ValidateToken parses and verifies a record API token. The token carries the
// nutritionist id in its "id" claim.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	var claims types.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.NutritionistID == 0 {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// GenerateToken mints a token the way the record API does. Only used by
// tests and local tooling; production tokens come from Login.
func (s *AuthService) GenerateToken(nutritionistID int) (string, error) {
	claims := types.TokenClaims{
		NutritionistID: nutritionistID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
