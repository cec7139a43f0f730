package utils // package utils provides helper functions for session tokens and hashing

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrTokenInvalid is returned by ParseSessionToken for any token
// that fails verification: bad signature, malformed payload, wrong
// algorithm, or past expiry. Callers do not need to distinguish
// these cases; all of them mean "re-login".
var ErrTokenInvalid = errors.New("invalid session token")

// SessionToken represents a signed HS256 JWT along with its expiry.
// The Token field contains the serialized JWT string; Exp stores the
// UTC expiration time. Session tokens are stateless: the server
// keeps no record of them, and validity is decided purely by the
// signature and the exp claim.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for an account. The
// JWT carries the account id as subject (sub), the expiration (exp)
// and the issued-at time (iat). ttlMin controls the token lifetime
// in minutes.
func NewSessionToken(secret string, accountID uint64, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a serialized session token and returns
// the account id from its subject claim. Verification is pure
// computation: signature check plus expiry, no store lookup.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	// JWT numbers decode as float64; some issuers encode sub as a string.
	switch sub := claims["sub"].(type) {
	case float64:
		if sub < 1 {
			return 0, ErrTokenInvalid
		}
		return uint64(sub), nil
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || id == 0 {
			return 0, ErrTokenInvalid
		}
		return id, nil
	}
	return 0, ErrTokenInvalid
}
