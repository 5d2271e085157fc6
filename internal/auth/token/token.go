package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager issues and validates signed bearer tokens. The subject claim carries
// the user id; there is no server-side session state.
type Manager struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewManager builds a Manager from explicit settings. alg names a HMAC signing
// algorithm ("HS256" when empty).
func NewManager(secret string, ttl time.Duration, alg string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token: empty secret")
	}
	if alg == "" {
		alg = "HS256"
	}
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, errors.New("token: unknown signing algorithm " + alg)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("token: algorithm " + alg + " is not HMAC-based")
	}
	return &Manager{secret: []byte(secret), ttl: ttl, method: method}, nil
}

// Issue signs a token whose subject is the given user id.
func (m *Manager) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and returns the subject user id.
func (m *Manager) Verify(tok string) (uint, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, errors.New("token: unexpected signing method " + t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("token: bad subject")
	}
	return uint(id), nil
}
