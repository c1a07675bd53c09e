package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string and Exp the absolute
// UTC expiration time. The same expiry is reused for the accessToken
// cookie so the cookie and the signature never disagree.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// Claims is the decoded identity carried inside an access token.
type Claims struct {
	UserID uint64
	Role   string
}

// ErrInvalidToken is returned by ParseAccessToken for any token that is
// malformed, expired, or whose signature does not verify.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user. It takes the
// signing secret, the user ID, the user's role, and a TTL in days. The
// JWT payload contains the subject (sub), role, expiration (exp) and
// issued-at (iat) claims.
func NewAccessToken(secret string, userID uint64, role string, ttlDays int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token string
// and returns the identity claims. Any failure collapses into
// ErrInvalidToken; callers do not need to distinguish why a token was bad.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var out Claims
	// JWT numeric values decode as float64.
	if sub, ok := mc["sub"].(float64); ok {
		out.UserID = uint64(sub)
	}
	if role, ok := mc["role"].(string); ok {
		out.Role = role
	}
	if out.UserID == 0 || out.Role == "" {
		return Claims{}, ErrInvalidToken
	}
	return out, nil
}
