package elloapi

import (
	"time"
)

type FriendStream struct{}

func (e FriendStream) Tag() Tag             { return TagFriendStream }
func (e FriendStream) pathVars() pathParams { return nil }
func (e FriendStream) parameters() Params   { return perPage(defaultPerPage) }

type NoiseStream struct{}

func (e NoiseStream) Tag() Tag             { return TagNoiseStream }
func (e NoiseStream) pathVars() pathParams { return nil }
func (e NoiseStream) parameters() Params   { return perPage(defaultPerPage) }

// NotificationsStream reads notifications - an empty Category reads all categories
type NotificationsStream struct {
	Category string
}

func (e NotificationsStream) Tag() Tag             { return TagNotificationsStream }
func (e NotificationsStream) pathVars() pathParams { return nil }
func (e NotificationsStream) parameters() Params {
	result := perPage(defaultPerPage)
	result.SetIf("category", e.Category)
	return result
}

// FriendNewContent polls for friend stream content newer than CreatedAt
type FriendNewContent struct {
	CreatedAt time.Time
}

func (e FriendNewContent) Tag() Tag                   { return TagFriendNewContent }
func (e FriendNewContent) pathVars() pathParams       { return nil }
func (e FriendNewContent) parameters() Params         { return nil }
func (e FriendNewContent) ifModifiedSince() time.Time { return e.CreatedAt }

// NoiseNewContent polls for noise stream content newer than CreatedAt
type NoiseNewContent struct {
	CreatedAt time.Time
}

func (e NoiseNewContent) Tag() Tag                   { return TagNoiseNewContent }
func (e NoiseNewContent) pathVars() pathParams       { return nil }
func (e NoiseNewContent) parameters() Params         { return nil }
func (e NoiseNewContent) ifModifiedSince() time.Time { return e.CreatedAt }

// NotificationsNewContent polls for notifications newer than CreatedAt
type NotificationsNewContent struct {
	CreatedAt time.Time
}

func (e NotificationsNewContent) Tag() Tag                   { return TagNotificationsNewContent }
func (e NotificationsNewContent) pathVars() pathParams       { return nil }
func (e NotificationsNewContent) parameters() Params         { return nil }
func (e NotificationsNewContent) ifModifiedSince() time.Time { return e.CreatedAt }

// Discover reads one of the discovery feeds
//
// the path and the mapping kind both depend on Type - Trending reads users, Recommended and Recent read posts.
// A zero Seed is sent as seed=0 (every such value reads the same ordering) - use NewDiscover for a seeded value.
type Discover struct {
	Type    DiscoverType
	PerPage int
	Seed    Seed
}

// NewDiscover creates a Discover with a freshly drawn seed
func NewDiscover(t DiscoverType, perPage int) Discover {
	return Discover{
		Type:    t,
		PerPage: perPage,
		Seed:    NewSeed(),
	}
}

func (e Discover) Tag() Tag { return TagDiscover }
func (e Discover) pathVars() pathParams {
	r := e.Type.route()
	return pathVars(r.resource, r.slug)
}
func (e Discover) parameters() Params {
	return Params{
		{Name: perPageParam, Value: e.PerPage},
		{Name: includeRecentPosts, Value: true},
		{Name: "seed", Value: e.Seed.param()},
	}
}

// AwesomePeopleStream reads the onboarding suggestions of people to follow
//
// a zero Seed is sent as seed=0 - use NewAwesomePeopleStream for a seeded value
type AwesomePeopleStream struct {
	Seed Seed
}

// NewAwesomePeopleStream creates an AwesomePeopleStream with a freshly drawn seed
func NewAwesomePeopleStream() AwesomePeopleStream {
	return AwesomePeopleStream{Seed: NewSeed()}
}

func (e AwesomePeopleStream) Tag() Tag             { return TagAwesomePeopleStream }
func (e AwesomePeopleStream) pathVars() pathParams { return nil }
func (e AwesomePeopleStream) parameters() Params {
	return Params{
		{Name: perPageParam, Value: onboardingPerPage},
		{Name: "seed", Value: e.Seed.param()},
	}
}

// CommunitiesStream reads the onboarding communities
type CommunitiesStream struct{}

func (e CommunitiesStream) Tag() Tag             { return TagCommunitiesStream }
func (e CommunitiesStream) pathVars() pathParams { return nil }
func (e CommunitiesStream) parameters() Params {
	return Params{
		{Name: "name", Value: "onboarding"},
		{Name: perPageParam, Value: onboardingPerPage},
	}
}

// Loves reads the posts loved by a user
type Loves struct {
	UserID string
}

func (e Loves) Tag() Tag             { return TagLoves }
func (e Loves) pathVars() pathParams { return pathVars(e.UserID) }
func (e Loves) parameters() Params   { return perPage(defaultPerPage) }
