package elloapi

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestAuthValue_String(t *testing.T) {
	assert.Equal(t, "Bearer abc", AuthValue{Scheme: BearerAuth, Value: "abc"}.String())
	assert.Equal(t, "abc", AuthValue{Value: "abc"}.String())
}

func TestStaticToken(t *testing.T) {
	tkn, ok := StaticToken("abc").BearerToken(time.Now())
	assert.True(t, ok)
	assert.Equal(t, "abc", tkn)
	_, ok = StaticToken("").BearerToken(time.Now())
	assert.False(t, ok)
	_, ok = NoToken.BearerToken(time.Now())
	assert.False(t, ok)
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestJWTToken(t *testing.T) {
	exp := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := signed(t, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})
	tokens := JWTToken(s)

	tkn, ok := tokens.BearerToken(exp.Add(-time.Minute))
	assert.True(t, ok)
	assert.Equal(t, s, tkn)
	_, ok = tokens.BearerToken(exp)
	assert.False(t, ok)
	_, ok = tokens.BearerToken(exp.Add(time.Hour))
	assert.False(t, ok)

	t.Run("no expiry", func(t *testing.T) {
		s := signed(t, jwt.MapClaims{"sub": "42"})
		_, ok := JWTToken(s).BearerToken(time.Now())
		assert.True(t, ok)
	})
	t.Run("unparseable", func(t *testing.T) {
		_, ok := JWTToken("not a jwt").BearerToken(time.Now())
		assert.False(t, ok)
	})
	t.Run("headers follow expiry", func(t *testing.T) {
		hs := Headers(FriendStream{}, tokens, FixedClock(exp.Add(-time.Second)), "en")
		assert.True(t, hs.Has("Authorization"))
		hs = Headers(FriendStream{}, tokens, FixedClock(exp.Add(time.Second)), "en")
		assert.False(t, hs.Has("Authorization"))
	})
}

func TestJWTToken_NilClock(t *testing.T) {
	exp := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	tokens := JWTToken(signed(t, jwt.MapClaims{"exp": exp.Unix()}))
	hs := Headers(FriendStream{}, tokens, FixedClock(exp.Add(time.Hour)), "en")
	assert.False(t, hs.Has("Authorization"))
	hs = Headers(FriendStream{}, tokens, nil, "en")
	assert.True(t, hs.Has("Authorization"))
}
