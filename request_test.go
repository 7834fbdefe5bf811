package elloapi

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(FlagComment{PostID: "555", CommentID: "666", Kind: "spam"}, StaticToken("abc"), nil, "en")
	assert.Equal(t, POST, req.Method)
	assert.Equal(t, "/api/v2/posts/555/comments/666/flag/spam", req.Path)
	assert.Equal(t, NoContentType, req.Kind)
	assert.Empty(t, req.Params)
	v, ok := req.Headers.Get("Authorization")
	assert.True(t, ok)
	assert.Equal(t, "Bearer abc", v)
}

func TestRequest_URL(t *testing.T) {
	testCases := []struct {
		endpoint Endpoint
		expect   string
	}{
		{FriendStream{}, "https://ello.co/api/v2/streams/friend?per_page=10"},
		{Discover{Type: Recommended, PerPage: 5, Seed: 3}, "https://ello.co/api/v2/discover/posts/recommended?per_page=5&include_recent_posts=true&seed=3"},
		{SearchForUsers{Terms: "sterling archer"}, "https://ello.co/api/v2/users?terms=sterling+archer&per_page=10"},
		{Join{Email: "me@me.me", Username: "sweetness", Password: "password"}, "https://ello.co/api/v2/join"},
		{DeletePost{PostID: "555"}, "https://ello.co/api/v2/posts/555"},
		{FriendNewContent{}, "https://ello.co/api/v2/streams/friend"},
	}
	for _, tc := range testCases {
		t.Run(Describe(tc.endpoint), func(t *testing.T) {
			req := BuildRequest(tc.endpoint, NoToken, nil, "en")
			u, err := req.URL("https://ello.co/")
			require.NoError(t, err)
			assert.Equal(t, tc.expect, u)
		})
	}
	_, err := BuildRequest(FriendStream{}, NoToken, nil, "en").URL("")
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestRequest_Body(t *testing.T) {
	req := BuildRequest(Join{Email: "me@me.me", Username: "sweetness", Password: "password"}, NoToken, nil, "en")
	body, err := req.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"email":"me@me.me","username":"sweetness","password":"password"}`, string(body))

	req = BuildRequest(RelationshipBatch{UserIDs: []string{"1", "2", "8"}, Relationship: "friend"}, NoToken, nil, "en")
	body, err = req.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"user_ids":["1","2","8"],"priority":"friend"}`, string(body))

	req = BuildRequest(RePost{PostID: "666"}, NoToken, nil, "en")
	body, err = req.Body()
	require.NoError(t, err)
	assert.Equal(t, `{"repost_id":666}`, string(body))

	req = BuildRequest(FriendStream{}, NoToken, nil, "en")
	body, err = req.Body()
	require.NoError(t, err)
	assert.Nil(t, body)

	req = BuildRequest(CreateLove{PostID: "1"}, NoToken, nil, "en")
	body, err = req.Body()
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestRequest_HTTPRequest(t *testing.T) {
	req := BuildRequest(CreatePost{Body: Body{"text": "hi"}}, StaticToken("abc"), nil, "de")
	hr, err := req.HTTPRequest(context.Background(), "https://ello.co")
	require.NoError(t, err)
	assert.Equal(t, "POST", hr.Method)
	assert.Equal(t, "https://ello.co/api/v2/posts", hr.URL.String())
	assert.Equal(t, "Bearer abc", hr.Header.Get("Authorization"))
	assert.Equal(t, "de", hr.Header.Get("Accept-Language"))
	data, err := io.ReadAll(hr.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, string(data))

	req = BuildRequest(FriendStream{}, NoToken, nil, "en")
	hr, err = req.HTTPRequest(context.Background(), "https://ello.co")
	require.NoError(t, err)
	assert.Equal(t, "GET", hr.Method)
	assert.Equal(t, "per_page=10", hr.URL.RawQuery)
	assert.Equal(t, "", hr.Header.Get("Authorization"))

	_, err = req.HTTPRequest(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestRequest_PathEscaping(t *testing.T) {
	testCases := []struct {
		endpoint    Endpoint
		expectPath  string
		expectQuery string
	}{
		{
			endpoint:    PostDetail{PostParam: "a#b", CommentCount: 1},
			expectPath:  "/api/v2/posts/a%23b",
			expectQuery: "comment_count=1",
		},
		{
			endpoint:   FlagPost{PostID: "1", Kind: "spam?admin=1"},
			expectPath: "/api/v2/posts/1/flag/spam%3Fadmin=1",
		},
		{
			endpoint:    UserStream{UserParam: "sterling archer"},
			expectPath:  "/api/v2/users/sterling%20archer",
			expectQuery: "post_count=10",
		},
		{
			endpoint:    PostComments{PostID: "a/b"},
			expectPath:  "/api/v2/posts/a%2Fb/comments",
			expectQuery: "per_page=10",
		},
		{
			endpoint:    UserStream{UserParam: "~archer"},
			expectPath:  "/api/v2/users/~archer",
			expectQuery: "post_count=10",
		},
	}
	for _, tc := range testCases {
		t.Run(Describe(tc.endpoint), func(t *testing.T) {
			assert.Equal(t, tc.expectPath, PathOf(tc.endpoint))
			hr, err := BuildRequest(tc.endpoint, NoToken, nil, "en").HTTPRequest(context.Background(), "https://ello.co")
			require.NoError(t, err)
			assert.Equal(t, tc.expectPath, hr.URL.EscapedPath())
			assert.Equal(t, tc.expectQuery, hr.URL.RawQuery)
			assert.Equal(t, "", hr.URL.Fragment)
		})
	}
}

func TestRequest_MalformedContinuation(t *testing.T) {
	e := InfiniteScroll{Base: FriendStream{}, QueryItems: []QueryItem{{"after", "x"}, {"after", "y"}}}
	req := BuildRequest(e, NoToken, nil, "en")
	require.Error(t, req.Err)
	assert.ErrorIs(t, req.Err, ErrMalformedContinuation)
	_, err := req.URL("https://ello.co")
	assert.ErrorIs(t, err, ErrMalformedContinuation)
	_, err = req.Body()
	assert.ErrorIs(t, err, ErrMalformedContinuation)
	_, err = req.HTTPRequest(context.Background(), "https://ello.co")
	assert.ErrorIs(t, err, ErrMalformedContinuation)

	nested := InfiniteScroll{Base: e}
	assert.ErrorIs(t, Validate(nested), ErrMalformedContinuation)
	assert.NoError(t, Validate(FriendStream{}))
	assert.NoError(t, BuildRequest(FriendStream{}, NoToken, nil, "en").Err)
}
