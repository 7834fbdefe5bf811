package elloapi

// Tag names a catalog variant (independent of the data the variant carries)
type Tag int

const (
	TagAmazonCredentials Tag = iota + 1
	TagAnonymousCredentials
	TagAuth
	TagAvailability
	TagAwesomePeopleStream
	TagCategories
	TagCommentDetail
	TagCommunitiesStream
	TagCreateComment
	TagCreateLove
	TagCreatePost
	TagCurrentUserProfile
	TagCurrentUserStream
	TagDeleteComment
	TagDeleteLove
	TagDeletePost
	TagDeleteSubscriptions
	TagDiscover
	TagEmojiAutoComplete
	TagFindFriends
	TagFlagComment
	TagFlagPost
	TagFriendNewContent
	TagFriendStream
	TagInfiniteScroll
	TagInviteFriends
	TagJoin
	TagLoves
	TagNoiseNewContent
	TagNoiseStream
	TagNotificationsNewContent
	TagNotificationsStream
	TagPostComments
	TagPostDetail
	TagPostLovers
	TagPostReposters
	TagProfileDelete
	TagProfileToggles
	TagProfileUpdate
	TagPushSubscriptions
	TagReAuth
	TagRePost
	TagRelationship
	TagRelationshipBatch
	TagSearchForPosts
	TagSearchForUsers
	TagUpdateComment
	TagUpdatePost
	TagUserNameAutoComplete
	TagUserStream
	TagUserStreamFollowers
	TagUserStreamFollowing
	tagEnd
)

var tagNames = [...]string{
	TagAmazonCredentials:       "AmazonCredentials",
	TagAnonymousCredentials:    "AnonymousCredentials",
	TagAuth:                    "Auth",
	TagAvailability:            "Availability",
	TagAwesomePeopleStream:     "AwesomePeopleStream",
	TagCategories:              "Categories",
	TagCommentDetail:           "CommentDetail",
	TagCommunitiesStream:       "CommunitiesStream",
	TagCreateComment:           "CreateComment",
	TagCreateLove:              "CreateLove",
	TagCreatePost:              "CreatePost",
	TagCurrentUserProfile:      "CurrentUserProfile",
	TagCurrentUserStream:       "CurrentUserStream",
	TagDeleteComment:           "DeleteComment",
	TagDeleteLove:              "DeleteLove",
	TagDeletePost:              "DeletePost",
	TagDeleteSubscriptions:     "DeleteSubscriptions",
	TagDiscover:                "Discover",
	TagEmojiAutoComplete:       "EmojiAutoComplete",
	TagFindFriends:             "FindFriends",
	TagFlagComment:             "FlagComment",
	TagFlagPost:                "FlagPost",
	TagFriendNewContent:        "FriendNewContent",
	TagFriendStream:            "FriendStream",
	TagInfiniteScroll:          "InfiniteScroll",
	TagInviteFriends:           "InviteFriends",
	TagJoin:                    "Join",
	TagLoves:                   "Loves",
	TagNoiseNewContent:         "NoiseNewContent",
	TagNoiseStream:             "NoiseStream",
	TagNotificationsNewContent: "NotificationsNewContent",
	TagNotificationsStream:     "NotificationsStream",
	TagPostComments:            "PostComments",
	TagPostDetail:              "PostDetail",
	TagPostLovers:              "PostLovers",
	TagPostReposters:           "PostReposters",
	TagProfileDelete:           "ProfileDelete",
	TagProfileToggles:          "ProfileToggles",
	TagProfileUpdate:           "ProfileUpdate",
	TagPushSubscriptions:       "PushSubscriptions",
	TagReAuth:                  "ReAuth",
	TagRePost:                  "RePost",
	TagRelationship:            "Relationship",
	TagRelationshipBatch:       "RelationshipBatch",
	TagSearchForPosts:          "SearchForPosts",
	TagSearchForUsers:          "SearchForUsers",
	TagUpdateComment:           "UpdateComment",
	TagUpdatePost:              "UpdatePost",
	TagUserNameAutoComplete:    "UserNameAutoComplete",
	TagUserStream:              "UserStream",
	TagUserStreamFollowers:     "UserStreamFollowers",
	TagUserStreamFollowing:     "UserStreamFollowing",
}

func (t Tag) String() string {
	if t > 0 && t < tagEnd {
		return tagNames[t]
	}
	return "Unknown"
}

// Tags returns every catalog tag, in declaration order
func Tags() []Tag {
	result := make([]Tag, 0, tagEnd-1)
	for t := TagAmazonCredentials; t < tagEnd; t++ {
		result = append(result, t)
	}
	return result
}

// ParseTag finds a tag by its name (case-sensitive)
func ParseTag(name string) (Tag, bool) {
	for t := TagAmazonCredentials; t < tagEnd; t++ {
		if tagNames[t] == name {
			return t, true
		}
	}
	return 0, false
}
