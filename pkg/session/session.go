// Package session issues and reads the signed, self-contained session tokens
// that prove identity and role without any server-side session store. A token
// carries a fixed absolute expiry; there is no sliding renewal and no
// revocation list — rotating the signing key invalidates all outstanding
// sessions.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the browser transports the session token in.
const CookieName = "roosly_session"

const defaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Identity is the minimal set of claims fixed at issuance time. A role
// change in the store does not affect outstanding tokens until they expire.
type Identity struct {
	UserID int64
	Email  string
	Name   string
	Role   string
}

// Claims is the wire shape of a session token.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with an HS256 key. The key is
// explicit configuration injected at construction, not ambient state.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue encodes identity into a signed, time-boxed token.
func (i *Issuer) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: id.UserID,
		Email:  id.Email,
		Name:   id.Name,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Read verifies signature and expiry and returns the decoded claims.
// Any failure collapses into ErrInvalidToken; callers get a single
// distinguished "invalid" result.
func (i *Issuer) Read(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
