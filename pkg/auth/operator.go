package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
	apphttp "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/http"
)

var (
	// ErrMissingCredentials is returned when no bearer token is presented.
	ErrMissingCredentials = errors.New("missing bearer token")
	// ErrInvalidCredentials is returned when the bearer token is neither the secret nor a valid operator token.
	ErrInvalidCredentials = errors.New("invalid operator credentials")
)

// OperatorAuthenticator accepts either the raw operator secret or an operator JWT signed with it.
type OperatorAuthenticator struct {
	secret []byte
	tokens *OperatorTokenValidator
	logger *zap.Logger
}

// NewOperatorAuthenticator creates an authenticator for the given shared secret.
func NewOperatorAuthenticator(secret, issuer string, logger *zap.Logger) *OperatorAuthenticator {
	return &OperatorAuthenticator{
		secret: []byte(secret),
		tokens: NewOperatorTokenValidator([]byte(secret), issuer),
		logger: logger,
	}
}

// Authenticate returns the operator identity for the request's bearer token.
func (a *OperatorAuthenticator) Authenticate(r *http.Request) (string, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", ErrMissingCredentials
	}

	if len(a.secret) > 0 && subtle.ConstantTimeCompare([]byte(token), a.secret) == 1 {
		return "secret", nil
	}

	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return "", errors.Join(ErrInvalidCredentials, err)
	}
	return claims.Subject, nil
}

// Middleware rejects unauthenticated requests with 401 and stores the operator identity in the context.
func (a *OperatorAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.Authenticate(r)
		if err != nil {
			a.logger.Warn("Operator authentication failed",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "Unauthorized"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), identity)))
	})
}
