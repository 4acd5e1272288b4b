package authtoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered JWT claims plus the acting user's display name.
// The service trusts tokens issued by the POS frontend's auth provider; user
// management itself lives outside this service.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Generate signs a token for userID. Used by tooling and tests; production
// tokens come from the external auth provider sharing the secret.
func Generate(secret, userID, name, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("authtoken: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Name:   name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the actor identity. Fails on expired
// tokens, wrong signatures and non-HMAC signing methods.
func Parse(secret, tokenString string) (userID, name string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("authtoken: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid claims")
	}
	name = claims.Name
	if name == "" {
		name = claims.UserID
	}
	return claims.UserID, name, nil
}
