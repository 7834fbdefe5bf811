package elloapi

import (
	"strconv"
)

// Body is the content of a write request - sent as the request parameters as-is
type Body map[string]any

func (b Body) params() Params {
	return paramsFromMap(b)
}

type CreatePost struct {
	Body Body
}

func (e CreatePost) Tag() Tag             { return TagCreatePost }
func (e CreatePost) pathVars() pathParams { return nil }
func (e CreatePost) parameters() Params   { return e.Body.params() }

type UpdatePost struct {
	PostID string
	Body   Body
}

func (e UpdatePost) Tag() Tag             { return TagUpdatePost }
func (e UpdatePost) pathVars() pathParams { return pathVars(e.PostID) }
func (e UpdatePost) parameters() Params   { return e.Body.params() }

type DeletePost struct {
	PostID string
}

func (e DeletePost) Tag() Tag             { return TagDeletePost }
func (e DeletePost) pathVars() pathParams { return pathVars(e.PostID) }
func (e DeletePost) parameters() Params   { return nil }

// PostDetail reads a single post - PostParam is a post id or a "~token"
type PostDetail struct {
	PostParam    string
	CommentCount int
}

func (e PostDetail) Tag() Tag             { return TagPostDetail }
func (e PostDetail) pathVars() pathParams { return pathVars(e.PostParam) }
func (e PostDetail) parameters() Params {
	return Params{{Name: "comment_count", Value: e.CommentCount}}
}

// RePost reposts an existing post
type RePost struct {
	PostID string
}

func (e RePost) Tag() Tag             { return TagRePost }
func (e RePost) pathVars() pathParams { return nil }

// parameters sends repost_id as an integer when the id is numeric
func (e RePost) parameters() Params {
	if id, err := strconv.Atoi(e.PostID); err == nil {
		return Params{{Name: "repost_id", Value: id}}
	}
	return Params{{Name: "repost_id", Value: e.PostID}}
}

type PostComments struct {
	PostID string
}

func (e PostComments) Tag() Tag             { return TagPostComments }
func (e PostComments) pathVars() pathParams { return pathVars(e.PostID) }
func (e PostComments) parameters() Params   { return perPage(defaultPerPage) }

type PostLovers struct {
	PostID string
}

func (e PostLovers) Tag() Tag             { return TagPostLovers }
func (e PostLovers) pathVars() pathParams { return pathVars(e.PostID) }
func (e PostLovers) parameters() Params   { return perPage(defaultPerPage) }

type PostReposters struct {
	PostID string
}

func (e PostReposters) Tag() Tag             { return TagPostReposters }
func (e PostReposters) pathVars() pathParams { return pathVars(e.PostID) }
func (e PostReposters) parameters() Params   { return perPage(defaultPerPage) }

type CommentDetail struct {
	PostID    string
	CommentID string
}

func (e CommentDetail) Tag() Tag             { return TagCommentDetail }
func (e CommentDetail) pathVars() pathParams { return pathVars(e.PostID, e.CommentID) }
func (e CommentDetail) parameters() Params   { return nil }

type CreateComment struct {
	ParentPostID string
	Body         Body
}

func (e CreateComment) Tag() Tag             { return TagCreateComment }
func (e CreateComment) pathVars() pathParams { return pathVars(e.ParentPostID) }
func (e CreateComment) parameters() Params   { return e.Body.params() }

type UpdateComment struct {
	PostID    string
	CommentID string
	Body      Body
}

func (e UpdateComment) Tag() Tag             { return TagUpdateComment }
func (e UpdateComment) pathVars() pathParams { return pathVars(e.PostID, e.CommentID) }
func (e UpdateComment) parameters() Params   { return e.Body.params() }

type DeleteComment struct {
	PostID    string
	CommentID string
}

func (e DeleteComment) Tag() Tag             { return TagDeleteComment }
func (e DeleteComment) pathVars() pathParams { return pathVars(e.PostID, e.CommentID) }
func (e DeleteComment) parameters() Params   { return nil }

// FlagPost reports a post - Kind is the flag reason (e.g. "spam")
type FlagPost struct {
	PostID string
	Kind   string
}

func (e FlagPost) Tag() Tag             { return TagFlagPost }
func (e FlagPost) pathVars() pathParams { return pathVars(e.PostID, e.Kind) }
func (e FlagPost) parameters() Params   { return nil }

type FlagComment struct {
	PostID    string
	CommentID string
	Kind      string
}

func (e FlagComment) Tag() Tag             { return TagFlagComment }
func (e FlagComment) pathVars() pathParams { return pathVars(e.PostID, e.CommentID, e.Kind) }
func (e FlagComment) parameters() Params   { return nil }

type CreateLove struct {
	PostID string
}

func (e CreateLove) Tag() Tag             { return TagCreateLove }
func (e CreateLove) pathVars() pathParams { return pathVars(e.PostID) }
func (e CreateLove) parameters() Params   { return nil }

type DeleteLove struct {
	PostID string
}

func (e DeleteLove) Tag() Tag             { return TagDeleteLove }
func (e DeleteLove) pathVars() pathParams { return pathVars(e.PostID) }
func (e DeleteLove) parameters() Params   { return nil }

type SearchForPosts struct {
	Terms string
}

func (e SearchForPosts) Tag() Tag             { return TagSearchForPosts }
func (e SearchForPosts) pathVars() pathParams { return nil }
func (e SearchForPosts) parameters() Params {
	return Params{{Name: "terms", Value: e.Terms}, {Name: perPageParam, Value: defaultPerPage}}
}

type Categories struct{}

func (e Categories) Tag() Tag             { return TagCategories }
func (e Categories) pathVars() pathParams { return nil }
func (e Categories) parameters() Params   { return nil }

type EmojiAutoComplete struct {
	Terms string
}

func (e EmojiAutoComplete) Tag() Tag             { return TagEmojiAutoComplete }
func (e EmojiAutoComplete) pathVars() pathParams { return nil }
func (e EmojiAutoComplete) parameters() Params {
	return Params{{Name: "terms", Value: e.Terms}}
}
