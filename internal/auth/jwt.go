// Package auth issues and validates the bearer tokens that carry the caller
// identity of every command and query.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Caller is the identity carried by an access token.
type Caller struct {
	UserID string
	Role   domain.CallerRole
	Source domain.CallerSource
}

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the caller's IAM role and
// the source of the call.
type accessClaims struct {
	jwt.RegisteredClaims
	Role   string `json:"role,omitempty"`
	Source string `json:"source,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
// and role and source as custom claims.
func (m *JWTManager) GenerateAccessToken(c Caller) (string, error) {
	if c.UserID == "" {
		return "", errors.New("user id is empty")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:   string(c.Role),
		Source: string(c.Source),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token. Only HS256
// tokens of this issuer with an expiry are accepted. A token without a
// source claim is a USER call.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Caller, error) {
	if tokenString == "" {
		return Caller{}, fmt.Errorf("token is empty")
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Caller{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return Caller{}, fmt.Errorf("token has no subject")
	}

	source := domain.CallerSource(claims.Source)
	switch source {
	case "":
		source = domain.SourceUser
	case domain.SourceUser, domain.SourceWorkflow:
	default:
		return Caller{}, fmt.Errorf("invalid source claim %q", claims.Source)
	}

	return Caller{
		UserID: claims.Subject,
		Role:   domain.CallerRole(strings.ToLower(strings.TrimSpace(claims.Role))),
		Source: source,
	}, nil
}
