package elloapi

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewInfiniteScroll(t *testing.T) {
	testCases := []struct {
		base      Endpoint
		items     []QueryItem
		expect    Params
		expectErr string
	}{
		{
			base:   FriendStream{},
			expect: Params{{Name: "per_page", Value: 10}},
		},
		{
			base:   FriendStream{},
			items:  []QueryItem{{"per_page", "2"}, {"after", "x"}},
			expect: Params{{Name: "per_page", Value: "2"}, {Name: "after", Value: "x"}},
		},
		{
			base:   SearchForUsers{Terms: "blah"},
			items:  []QueryItem{{"page", "2"}, {"terms", "blah"}},
			expect: Params{{Name: "terms", Value: "blah"}, {Name: "per_page", Value: 10}, {Name: "page", Value: "2"}},
		},
		{
			base:   RelationshipBatch{UserIDs: []string{"1"}, Relationship: "friend"},
			items:  []QueryItem{{"user_ids[]", "2"}, {"user_ids[]", "3"}},
			expect: Params{{Name: "user_ids", Value: []string{"2", "3"}}, {Name: "priority", Value: "friend"}},
		},
		{
			base:   FriendStream{},
			items:  []QueryItem{{"after", "x"}, {"after", "x"}},
			expect: Params{{Name: "per_page", Value: 10}, {Name: "after", Value: "x"}},
		},
		{
			base:      FriendStream{},
			items:     []QueryItem{{"after", "x"}, {"after", "y"}},
			expectErr: `malformed continuation: conflicting values (key "after", values ["x" "y"])`,
		},
		{
			base:      FriendStream{},
			items:     []QueryItem{{"", "x"}},
			expectErr: `malformed continuation: empty item name`,
		},
		{
			base:      FriendStream{},
			items:     []QueryItem{{"[]", "x"}},
			expectErr: `malformed continuation: empty item name (key "[]", values ["x"])`,
		},
		{
			base:      FriendStream{},
			items:     []QueryItem{{"ids", "1"}, {"ids[]", "2"}},
			expectErr: `malformed continuation: mixed scalar and array values (key "ids", values ["1" "2"])`,
		},
		{
			base:      FriendStream{},
			items:     []QueryItem{{"ids[]", "1"}, {"ids", "2"}},
			expectErr: `malformed continuation: mixed scalar and array values (key "ids", values ["2"])`,
		},
		{
			base:      RelationshipBatch{UserIDs: []string{"1"}, Relationship: "friend"},
			items:     []QueryItem{{"user_ids", "2"}},
			expectErr: `malformed continuation: scalar value for non-scalar parameter (key "user_ids", values ["2"])`,
		},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("[%d]", i+1), func(t *testing.T) {
			is, err := NewInfiniteScroll(tc.base, tc.items)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectErr, err.Error())
				assert.ErrorIs(t, err, ErrMalformedContinuation)
				var cErr ContinuationError
				require.ErrorAs(t, err, &cErr)
				assert.Equal(t, ErrorContinuation, cErr.Type())
				assert.Equal(t, ParametersOf(tc.base), ParametersOf(is))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expect, ParametersOf(is))
			}
		})
	}
}

func TestInfiniteScroll_Idempotent(t *testing.T) {
	items := []QueryItem{{"per_page", "2"}, {"after", "x"}}
	once, err := NewInfiniteScroll(FriendStream{}, items)
	require.NoError(t, err)
	twice, err := NewInfiniteScroll(once, items)
	require.NoError(t, err)
	assert.Equal(t, ParametersOf(once), ParametersOf(twice))
	assert.Equal(t, PathOf(once), PathOf(twice))
	assert.Equal(t, KindOf(once), KindOf(twice))
}

func TestInfiniteScroll_FollowsBase(t *testing.T) {
	base := Discover{Type: Trending, PerPage: 5, Seed: 9}
	is, err := NewInfiniteScroll(base, []QueryItem{{"page", "2"}})
	require.NoError(t, err)
	assert.Equal(t, PathOf(base), PathOf(is))
	assert.Equal(t, MethodOf(base), MethodOf(is))
	assert.Equal(t, KindOf(base), KindOf(is))
	assert.Equal(t, PolicyOf(base), PolicyOf(is))
	seed, _ := ParametersOf(is).Get("seed")
	assert.Equal(t, 9, seed)
}

func TestInfiniteScroll_CopiesItems(t *testing.T) {
	items := []QueryItem{{"after", "x"}}
	is, err := NewInfiniteScroll(FriendStream{}, items)
	require.NoError(t, err)
	items[0].Value = "y"
	v, _ := ParametersOf(is).Get("after")
	assert.Equal(t, "x", v)
}

func TestInfiniteScroll_NilBase(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewInfiniteScroll(nil, nil)
	})
}
