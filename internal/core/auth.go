package core

import (
	"crypto/subtle"
	"errors"
	"fmt"

	tokenIssuer "ethstore/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUnauthorized error = errors.New("unauthorized")

// Authenticator issues and checks the bearer tokens that guard record writes.
type Authenticator struct {
	logs      *zap.SugaredLogger
	jwtIssuer JWTIssuer
	operator  Operator
}

func NewAuthenticator(logger *zap.SugaredLogger, jwt JWTIssuer, operator Operator) *Authenticator {
	return &Authenticator{
		logs:      logger,
		jwtIssuer: jwt,
		operator:  operator,
	}
}

// Authenticate checks the credentials against the configured operator and returns a signed token.
func (a *Authenticator) Authenticate(msg AuthMessage) (string, error) {
	if subtle.ConstantTimeCompare([]byte(msg.Username), []byte(a.operator.Username)) != 1 {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   a.operator.Username,
		Subject:    a.operator.Username,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("operator authenticated", "username", a.operator.Username)
	return signed, nil
}

// Authorize accepts a token issued by Authenticate for the configured operator.
func (a *Authenticator) Authorize(token string) error {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return fmt.Errorf("%w: validate jwt token: %w", ErrUnauthorized, err)
	}

	subject, _ := claims["sub"].(string)
	if subject != a.operator.Username {
		return fmt.Errorf("%w: unknown subject %q", ErrUnauthorized, subject)
	}

	return nil
}
