package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT issues and validates bearer tokens bound to a user's email.
type JWT struct {
	secretKey string
	method    jwt.SigningMethod
	exp       time.Duration
}

// New creates a JWT instance. The algorithm must be one of the HMAC family
// (HS256, HS384, HS512); anything else is a configuration error.
func New(secretKey, algorithm string, expiration time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &JWT{
		secretKey: secretKey,
		method:    method,
		exp:       expiration,
	}, nil
}

// Generate creates a signed token whose subject is the given email.
func (j *JWT) Generate(ctx context.Context, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(j.exp).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(j.method, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetEmail parses the token string and returns the subject email if the
// token is well-formed, correctly signed and not expired.
func (j *JWT) GetEmail(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return "", errors.New("subject not found in token")
	}
	return email, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
