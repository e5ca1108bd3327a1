package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorSubject is the subject every operator token carries.
const OperatorSubject = "operator"

// IssueOperatorToken signs a short-lived HS256 operator token with the shared secret.
func IssueOperatorToken(secret []byte, issuer string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty operator secret")
	}
	claims := jwt.RegisteredClaims{
		Subject:   OperatorSubject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign operator token: %w", err)
	}
	return signed, nil
}

// OperatorTokenValidator validates operator tokens signed with the shared secret.
type OperatorTokenValidator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewOperatorTokenValidator creates a validator. An empty issuer skips the issuer check.
func NewOperatorTokenValidator(secret []byte, issuer string) *OperatorTokenValidator {
	return &OperatorTokenValidator{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}
}

// ValidateToken checks signature, algorithm, subject, issuer and expiry and returns the claims.
func (v *OperatorTokenValidator) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(OperatorSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
