package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
)

var (
	// ErrInvalidToken is returned when a token is invalid.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", proto.ErrUnauthorized)

	// ErrMissingSecret is returned when no JWT secret is configured.
	ErrMissingSecret = errors.New("auth: jwt secret is not configured")
)

// IssueToken returns a signed HS256 token identifying user, valid for ttl.
// A zero ttl uses the configured default.
func (d *Backend) IssueToken(user uuid.UUID, ttl time.Duration) (string, error) {
	if d.cfg.Auth.JWTSecret == "" {
		return "", ErrMissingSecret
	}

	if ttl <= 0 {
		ttl = d.cfg.Auth.TokenTTL
	}

	now := d.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.String(),
		Issuer:    d.cfg.Auth.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(d.cfg.Auth.JWTSecret))
}

// ParseToken verifies a token and returns the user it identifies.
func (d *Backend) ParseToken(bearer string) (uuid.UUID, error) {
	if d.cfg.Auth.JWTSecret == "" {
		return uuid.Nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(d.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if d.cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(d.cfg.Auth.Issuer))
	}

	token, err := jwt.ParseWithClaims(bearer, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(d.cfg.Auth.JWTSecret), nil
	}, opts...)
	if err != nil {
		d.logger.Debug("failed to parse jwt", "err", err)
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !token.Valid || !ok {
		return uuid.Nil, ErrInvalidToken
	}

	user, err := uuid.Parse(claims.Subject)
	if err != nil {
		d.logger.Debug("invalid jwt subject", "subject", claims.Subject)
		return uuid.Nil, ErrInvalidToken
	}

	return user, nil
}

// TokenTTL returns the default lifetime of issued tokens.
func (d *Backend) TokenTTL() time.Duration {
	return d.cfg.Auth.TokenTTL
}
