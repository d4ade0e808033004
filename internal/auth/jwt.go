package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Wichtowski/whobought/internal/models"
)

var (
	// ErrTokenExpired reports a token past its expiry; everything else
	// about it may still be well-formed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid covers every other verification failure: bad
	// signature, wrong issuer or audience, malformed structure.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrMissingToken reports a protected request without a bearer token.
	ErrMissingToken = errors.New("authorization token required")

	// ErrMissingSubject reports a valid token without a subject claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the JWT claims carried by every issued token: the registered
// set (sub, iss, aud, iat, exp) plus username and email.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the resolved user identity of an authenticated request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenManager issues and validates signed bearer tokens. Tokens carry no
// server-side state: validity is purely a function of the signature and the
// embedded timestamps, so a token cannot be revoked before expiry.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

// NewTokenManager creates a token manager. secret should be a strong random
// string of at least 32 bytes; ttl is how long issued tokens remain valid.
func NewTokenManager(secret string, ttl time.Duration, issuer, audience string) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		ttl:      ttl,
		issuer:   issuer,
		audience: audience,
	}
}

// Issue creates a signed HS256 token for the given user with the configured
// time-to-live.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, issuer, audience, and expiry, returning the
// claims when everything checks out. Expiry is reported as ErrTokenExpired;
// every other failure as ErrTokenInvalid.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IdentityFromClaims resolves the user identity carried by validated
// claims. A token without a subject does not authenticate anyone.
func IdentityFromClaims(claims *Claims) (*Identity, error) {
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return &Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
