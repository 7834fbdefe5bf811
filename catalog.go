package elloapi

import (
	"github.com/ello/elloapi/common"
	"time"
)

// Catalog returns a representative instance of every catalog variant (every discover type included)
//
// the instances carry fixed data, so repeated calls return structurally equal values
func Catalog() []Endpoint {
	client := ClientCredentials{ID: "client-id", Secret: "client-secret"}
	since := time.Date(2014, time.June, 2, 0, 0, 0, 0, time.UTC)
	app := AppInfo{BundleIdentifier: "co.ello.Ello", ShortVersion: "1.0", Version: "1"}
	result := []Endpoint{
		AmazonCredentials{},
		AnonymousCredentials{Client: client},
		Auth{Client: client, Email: "me@me.me", Password: "p455w0rd"},
		Availability{Content: map[string]string{"username": "sterlingarcher"}},
		AwesomePeopleStream{Seed: 1},
		Categories{},
		CommentDetail{PostID: "555", CommentID: "666"},
		CommunitiesStream{},
		CreateComment{ParentPostID: "555", Body: Body{"text": "my sweet comment content"}},
		CreateLove{PostID: "555"},
		CreatePost{Body: Body{"text": "my sweet post content"}},
		CurrentUserProfile{},
		CurrentUserStream{},
		DeleteComment{PostID: "555", CommentID: "666"},
		DeleteLove{PostID: "555"},
		DeletePost{PostID: "555"},
		DeleteSubscriptions{Token: []byte{0x12, 0x34, 0xab, 0xcd}, App: app},
	}
	for _, dt := range DiscoverTypes() {
		result = append(result, Discover{Type: dt, PerPage: defaultPerPage, Seed: 1})
	}
	result = append(result,
		EmojiAutoComplete{Terms: "bl"},
		FindFriends{Contacts: map[string][]string{"Sterling Archer": {"archer@isis.com"}}},
		FlagComment{PostID: "555", CommentID: "666", Kind: "spam"},
		FlagPost{PostID: "555", Kind: "spam"},
		FriendNewContent{CreatedAt: since},
		FriendStream{},
		InfiniteScroll{Base: FriendStream{}, QueryItems: []QueryItem{{Name: "per_page", Value: "2"}, {Name: "after", Value: "2014-06-02T00:00:00.000000000+0000"}}},
		InviteFriends{Contact: "me@me.me"},
		Join{Email: "me@me.me", Username: "sweetness", Password: "password"},
		Loves{UserID: "42"},
		NoiseNewContent{CreatedAt: since},
		NoiseStream{},
		NotificationsNewContent{CreatedAt: since},
		NotificationsStream{Category: "all"},
		PostComments{PostID: "555"},
		PostDetail{PostParam: "555", CommentCount: 10},
		PostLovers{PostID: "555"},
		PostReposters{PostID: "555"},
		ProfileDelete{},
		ProfileToggles{},
		ProfileUpdate{Body: Body{"name": "Sterling Archer"}},
		PushSubscriptions{Token: []byte{0x12, 0x34, 0xab, 0xcd}, App: app},
		ReAuth{Client: client, Token: "refresh"},
		RePost{PostID: "666"},
		Relationship{UserID: "42", Relationship: "friend"},
		RelationshipBatch{UserIDs: []string{"1", "2", "8"}, Relationship: "friend"},
		SearchForPosts{Terms: "blah"},
		SearchForUsers{Terms: "blah"},
		UpdateComment{PostID: "555", CommentID: "666", Body: Body{"text": "edited"}},
		UpdatePost{PostID: "555", Body: Body{"text": "edited"}},
		UserNameAutoComplete{Terms: "ste"},
		UserStream{UserParam: "~archer"},
		UserStreamFollowers{UserID: "42"},
		UserStreamFollowing{UserID: "42"},
	)
	return result
}

// Route describes a registered route of the catalog
type Route struct {
	Name         string
	Tag          Tag
	Method       MethodName
	Template     string
	Kind         MappingKind
	RequiresAuth bool
}

var _ common.Route = Route{}

func (r Route) RouteName() string {
	return r.Name
}

func (r Route) MethodName() string {
	return string(r.Method)
}

func (r Route) Path() string {
	return r.Template
}

// Routes returns every registered route, in tag order
//
// Discover is listed once per discover type (with its resolved path)
func Routes() []Route {
	result := make([]Route, 0, len(registry)+len(discoverRoutes))
	for _, tag := range Tags() {
		if _, ok := registry[tag]; !ok {
			continue
		}
		if tag == TagDiscover {
			for _, dt := range DiscoverTypes() {
				result = append(result, routeOf(tag, dt))
			}
		} else {
			result = append(result, routeOf(tag, 0))
		}
	}
	return result
}

// routeFor describes the route an endpoint is dispatched on
func routeFor(e Endpoint) Route {
	base := Unwrap(mustEndpoint(e))
	if d, ok := base.(Discover); ok {
		return routeOf(TagDiscover, d.Type)
	}
	return routeOf(base.Tag(), 0)
}

func routeOf(tag Tag, dt DiscoverType) Route {
	r := lookup(tag)
	result := Route{
		Name:         tag.String(),
		Tag:          tag,
		Method:       r.method,
		Template:     r.path,
		Kind:         r.kind,
		RequiresAuth: !r.anonymous,
	}
	if tag == TagDiscover {
		d := Discover{Type: dt}
		result.Name += "(" + dt.String() + ")"
		result.Template = PathOf(d)
		result.Kind = KindOf(d)
	}
	return result
}
