package elloapi

import (
	"github.com/golang-jwt/jwt/v5"
	"time"
)

type AuthScheme string

const (
	BearerAuth = AuthScheme("Bearer")
)

type AuthValue struct {
	Scheme AuthScheme
	Value  string
}

func (v AuthValue) String() string {
	if v.Scheme != "" {
		return string(v.Scheme) + " " + v.Value
	}
	return v.Value
}

// TokenProvider is the source of the bearer token sent with auth-required requests
//
// refresh and expiry are the provider's concern - it reports no token (false) when none is current
type TokenProvider interface {
	BearerToken(now time.Time) (string, bool)
}

type TokenFunc func(now time.Time) (string, bool)

func (f TokenFunc) BearerToken(now time.Time) (string, bool) {
	return f(now)
}

// NoToken is a TokenProvider that never has a token
var NoToken TokenProvider = TokenFunc(func(time.Time) (string, bool) {
	return "", false
})

// StaticToken is a TokenProvider that always supplies the given token (an empty token is absent)
func StaticToken(token string) TokenProvider {
	return TokenFunc(func(time.Time) (string, bool) {
		return token, token != ""
	})
}

// JWTToken is a TokenProvider for a JWT access token
//
// the token is not verified (that is the server's job) - it is reported absent once its exp claim has passed,
// or when it cannot be parsed
func JWTToken(token string) TokenProvider {
	var exp time.Time
	valid := false
	if tkn, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err == nil {
		var nd *jwt.NumericDate
		if nd, err = tkn.Claims.GetExpirationTime(); err == nil {
			valid = true
			if nd != nil {
				exp = nd.Time
			}
		}
	}
	return TokenFunc(func(now time.Time) (string, bool) {
		if !valid || (!exp.IsZero() && !now.Before(exp)) {
			return "", false
		}
		return token, true
	})
}

func bearer(tokens TokenProvider, now time.Time) (AuthValue, bool) {
	if tokens == nil {
		return AuthValue{}, false
	}
	if token, ok := tokens.BearerToken(now); ok && token != "" {
		return AuthValue{Scheme: BearerAuth, Value: token}, true
	}
	return AuthValue{}, false
}
