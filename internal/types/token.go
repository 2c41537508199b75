package types

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the claims carried by a record API bearer token.
// The upstream service signs HS256 tokens whose "id" claim is the
// nutritionist's registry id.
type TokenClaims struct {
	jwt.RegisteredClaims
	NutritionistID int `json:"id"`
}
