// Package token signs and verifies the compact JWTs used for access and
// refresh credentials. The signing key is fixed for the process lifetime;
// rotating it requires a restart and invalidates all outstanding tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for any verification failure. Bad signature and
// expiry are deliberately indistinguishable to callers.
var ErrInvalid = errors.New("token is invalid")

// Claims is the verified payload of a token.
type Claims struct {
	SubjectID string
	IssuedAt  time.Time
	Expires   time.Time
}

// Codec issues and verifies HS512-signed tokens.
type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewCodec builds a Codec for the given symmetric key and issuer tag.
func NewCodec(secret, issuer string) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue signs a token for subjectID expiring at now+ttl and returns the
// token string together with the computed expiry.
func (c *Codec) Issue(subjectID string, ttl time.Duration) (string, time.Time, error) {
	now := c.now().UTC()
	expires := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify checks the signature and expiry of a token string. Any failure
// yields ErrInvalid.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalid
	}

	out := &Claims{SubjectID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.Expires = claims.ExpiresAt.Time
	}
	return out, nil
}
