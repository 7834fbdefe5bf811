package elloapi

import (
	"fmt"
	"github.com/go-andiamo/urit"
	"strings"
)

const apiVersion = "v2"

// route is the static registry entry for a variant tag
type route struct {
	method    MethodName
	path      string
	template  urit.Template
	vars      int
	kind      MappingKind
	anonymous bool // anonymous routes never carry an Authorization header
	// resolve, when set, resolves the mapping kind from the variant's data (two-level lookup)
	resolve func(e Endpoint) MappingKind
}

func api(path string) string {
	return "/api/" + apiVersion + path
}

var registry = buildRegistry(map[Tag]route{
	TagAmazonCredentials:    {method: GET, path: api("/assets/credentials"), kind: AmazonCredentialsType},
	TagAnonymousCredentials: {method: POST, path: "/api/oauth/token", kind: ErrorType, anonymous: true},
	TagAuth:                 {method: POST, path: "/api/oauth/token", kind: ErrorType, anonymous: true},
	TagAvailability:         {method: POST, path: api("/availability"), kind: AvailabilityType},
	TagAwesomePeopleStream:  {method: GET, path: api("/discover/users/onboarding"), kind: UsersType},
	TagCategories:           {method: GET, path: api("/categories"), kind: PostCategoriesType},
	TagCommentDetail:        {method: GET, path: api("/posts/{postId}/comments/{commentId}"), kind: CommentsType},
	TagCommunitiesStream:    {method: GET, path: api("/interest_categories/members"), kind: UsersType},
	TagCreateComment:        {method: POST, path: api("/posts/{postId}/comments"), kind: CommentsType},
	TagCreateLove:           {method: POST, path: api("/posts/{postId}/loves"), kind: LovesType},
	TagCreatePost:           {method: POST, path: api("/posts"), kind: PostsType},
	TagCurrentUserProfile:   {method: GET, path: api("/profile"), kind: UsersType},
	TagCurrentUserStream:    {method: GET, path: api("/profile"), kind: UsersType},
	TagDeleteComment:        {method: DELETE, path: api("/posts/{postId}/comments/{commentId}"), kind: ErrorType},
	TagDeleteLove:           {method: DELETE, path: api("/posts/{postId}/love"), kind: NoContentType},
	TagDeletePost:           {method: DELETE, path: api("/posts/{postId}"), kind: ErrorType},
	TagDeleteSubscriptions:  {method: DELETE, path: api("/profile/push_subscriptions/apns/{token}"), kind: NoContentType},
	TagDiscover: {method: GET, path: api("/discover/{resource}/{type}"), resolve: func(e Endpoint) MappingKind {
		return e.(Discover).Type.MappingKind()
	}},
	TagEmojiAutoComplete:       {method: GET, path: api("/emoji/autocomplete"), kind: AutoCompleteResultType},
	TagFindFriends:             {method: POST, path: api("/profile/find_friends"), kind: UsersType},
	TagFlagComment:             {method: POST, path: api("/posts/{postId}/comments/{commentId}/flag/{kind}"), kind: NoContentType},
	TagFlagPost:                {method: POST, path: api("/posts/{postId}/flag/{kind}"), kind: NoContentType},
	TagFriendNewContent:        {method: HEAD, path: api("/streams/friend"), kind: ErrorType},
	TagFriendStream:            {method: GET, path: api("/streams/friend"), kind: ActivitiesType},
	TagInviteFriends:           {method: POST, path: api("/invitations"), kind: NoContentType},
	TagJoin:                    {method: POST, path: api("/join"), kind: UsersType},
	TagLoves:                   {method: GET, path: api("/users/{userId}/loves"), kind: LovesType},
	TagNoiseNewContent:         {method: HEAD, path: api("/streams/noise"), kind: ErrorType},
	TagNoiseStream:             {method: GET, path: api("/streams/noise"), kind: ActivitiesType},
	TagNotificationsNewContent: {method: HEAD, path: api("/notifications"), kind: ErrorType},
	TagNotificationsStream:     {method: GET, path: api("/notifications"), kind: ActivitiesType},
	TagPostComments:            {method: GET, path: api("/posts/{postId}/comments"), kind: CommentsType},
	TagPostDetail:              {method: GET, path: api("/posts/{postParam}"), kind: PostsType},
	TagPostLovers:              {method: GET, path: api("/posts/{postId}/lovers"), kind: UsersType},
	TagPostReposters:           {method: GET, path: api("/posts/{postId}/reposters"), kind: UsersType},
	TagProfileDelete:           {method: DELETE, path: api("/profile"), kind: NoContentType},
	TagProfileToggles:          {method: GET, path: api("/profile/settings"), kind: DynamicSettingsType},
	TagProfileUpdate:           {method: PATCH, path: api("/profile"), kind: UsersType},
	TagPushSubscriptions:       {method: POST, path: api("/profile/push_subscriptions/apns/{token}"), kind: NoContentType},
	TagReAuth:                  {method: POST, path: "/api/oauth/token", kind: ErrorType, anonymous: true},
	TagRePost:                  {method: POST, path: api("/posts"), kind: PostsType},
	TagRelationship:            {method: POST, path: api("/users/{userId}/add/{relationship}"), kind: RelationshipsType},
	TagRelationshipBatch:       {method: POST, path: api("/relationships/batch"), kind: NoContentType},
	TagSearchForPosts:          {method: GET, path: api("/posts"), kind: PostsType},
	TagSearchForUsers:          {method: GET, path: api("/users"), kind: UsersType},
	TagUpdateComment:           {method: PATCH, path: api("/posts/{postId}/comments/{commentId}"), kind: CommentsType},
	TagUpdatePost:              {method: PATCH, path: api("/posts/{postId}"), kind: PostsType},
	TagUserNameAutoComplete:    {method: GET, path: api("/users/autocomplete"), kind: AutoCompleteResultType},
	TagUserStream:              {method: GET, path: api("/users/{userParam}"), kind: UsersType},
	TagUserStreamFollowers:     {method: GET, path: api("/users/{userId}/followers"), kind: UsersType},
	TagUserStreamFollowing:     {method: GET, path: api("/users/{userId}/following"), kind: UsersType},
})

func buildRegistry(routes map[Tag]route) map[Tag]*route {
	result := make(map[Tag]*route, len(routes))
	for tag, r := range routes {
		t, err := urit.NewTemplate(r.path)
		if err != nil {
			panic(fmt.Errorf("invalid path template for %s: %w", tag, err))
		}
		r.template = t
		r.vars = strings.Count(r.path, "{")
		result[tag] = &r
	}
	return result
}

// lookup finds the registry entry for a tag - panicking if the tag is not registered
func lookup(tag Tag) *route {
	if r, ok := registry[tag]; ok {
		return r
	}
	panic(&missingMappingError{tag: tag, detail: "no registry entry"})
}

// KindFor is the mapping kind registered for a tag
//
// it panics for tags whose kind depends on variant data (Discover, InfiniteScroll) - use KindOf for those
func KindFor(tag Tag) MappingKind {
	r := lookup(tag)
	if r.resolve != nil || !r.kind.IsValid() {
		panic(&missingMappingError{tag: tag, detail: "kind depends on variant data"})
	}
	return r.kind
}

// RequiresAuth reports whether requests for the tag carry the bearer token
//
// InfiniteScroll has no entry of its own (it follows its base) - use PolicyOf to resolve it
func RequiresAuth(tag Tag) bool {
	return !lookup(tag).anonymous
}
