package elloapi

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSampleData(t *testing.T) {
	for _, e := range Catalog() {
		t.Run(Describe(e), func(t *testing.T) {
			data := SampleData(e)
			assert.Equal(t, data, SampleData(e))
			base := Unwrap(e)
			if KindOf(base) == NoContentType || MethodOf(base) == HEAD {
				assert.Empty(t, data)
			} else {
				assert.True(t, json.Valid(data), string(data))
			}
		})
	}
}

func TestSampleData_IsCopy(t *testing.T) {
	data := SampleData(FriendStream{})
	data[0] = 'X'
	assert.NotEqual(t, data, SampleData(FriendStream{}))
}

func TestSampleData_TagFixture(t *testing.T) {
	assert.NotEqual(t, SampleData(Auth{}), SampleData(DeletePost{PostID: "1"}))
	assert.Equal(t, SampleData(DeletePost{PostID: "1"}), SampleData(DeleteComment{PostID: "1", CommentID: "2"}))
	assert.Equal(t, SampleData(Discover{Type: Trending}), SampleData(SearchForUsers{}))
}
