package elloapi

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRegistry_Totality(t *testing.T) {
	for _, tag := range Tags() {
		if tag == TagInfiniteScroll {
			_, ok := registry[tag]
			assert.False(t, ok)
			continue
		}
		t.Run(tag.String(), func(t *testing.T) {
			r, ok := registry[tag]
			assert.True(t, ok)
			assert.NotEmpty(t, r.path)
			assert.NotEmpty(t, r.method)
			if tag == TagDiscover {
				assert.NotNil(t, r.resolve)
			} else {
				assert.True(t, r.kind.IsValid())
			}
		})
	}
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, ActivitiesType, KindFor(TagFriendStream))
	assert.Equal(t, NoContentType, KindFor(TagFlagComment))
	assert.Panics(t, func() {
		KindFor(TagDiscover)
	})
	assert.Panics(t, func() {
		KindFor(TagInfiniteScroll)
	})
	assert.Panics(t, func() {
		KindFor(Tag(0))
	})
}

func TestRequiresAuth(t *testing.T) {
	anonymous := map[Tag]bool{TagAnonymousCredentials: true, TagAuth: true, TagReAuth: true}
	for _, tag := range Tags() {
		if tag == TagInfiniteScroll {
			continue
		}
		assert.Equal(t, !anonymous[tag], RequiresAuth(tag), tag.String())
	}
	assert.Panics(t, func() {
		RequiresAuth(TagInfiniteScroll)
	})
}

func TestRoutes(t *testing.T) {
	routes := Routes()
	assert.Equal(t, len(Tags())-2+len(DiscoverTypes()), len(routes))
	names := make(map[string]Route, len(routes))
	for _, r := range routes {
		names[r.RouteName()] = r
	}
	d, ok := names["Discover(Trending)"]
	assert.True(t, ok)
	assert.Equal(t, "/api/v2/discover/users/trending", d.Path())
	assert.Equal(t, "GET", d.MethodName())
	assert.Equal(t, UsersType, d.Kind)
	fc, ok := names["FlagComment"]
	assert.True(t, ok)
	assert.Equal(t, "/api/v2/posts/{postId}/comments/{commentId}/flag/{kind}", fc.Path())
	assert.Equal(t, "POST", fc.MethodName())
	auth, ok := names["Auth"]
	assert.True(t, ok)
	assert.False(t, auth.RequiresAuth)

	assert.Equal(t, names["Discover(Featured)"], routeFor(InfiniteScroll{Base: Discover{Type: Recommended}}))
	assert.Equal(t, names["PostComments"], routeFor(PostComments{PostID: "1"}))
}
