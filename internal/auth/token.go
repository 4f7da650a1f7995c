package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Customer sessions are signed bearer tokens: subject carries the customer id
// and an email claim binds quote lookups to the authenticated principal.

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSecret     = errors.New("session secret not configured")
)

type CustomerClaims struct {
	CustomerID string
	Email      string
}

func IssueCustomerToken(secret, customerID, email string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   customerID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func ParseCustomerToken(secret, tokenString string) (*CustomerClaims, error) {
	// An empty key would accept any token signed with an empty key.
	if secret == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, ErrInvalidToken
	}
	return &CustomerClaims{CustomerID: sub, Email: email}, nil
}
