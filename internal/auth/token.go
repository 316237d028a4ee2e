package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is fixed; there is no refresh flow.
const TokenLifetime = 7 * 24 * time.Hour

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrNoSigningKey   = errors.New("signing key is not configured")
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates stateless HS256 session tokens. Tokens
// cannot be revoked before they expire.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrNoSigningKey
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// WithClock returns a copy of m that reads time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	return &TokenManager{secret: m.secret, now: now}
}

func (m *TokenManager) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", fmt.Errorf("issue token: empty subject")
	}

	now := m.now()
	claims := Claims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Validate checks signature and expiry and returns the subject id.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	// jwt accepts now == exp; the session ends at exp.
	if !m.now().Before(claims.ExpiresAt.Time) {
		return "", ErrTokenExpired
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenMalformed)
	}

	return subject, nil
}
