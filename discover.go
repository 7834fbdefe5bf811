package elloapi

// DiscoverType selects which discovery feed a Discover request reads
//
// Trending is served as a collection of users, Recommended and Recent as collections of posts
type DiscoverType int

const (
	Recommended DiscoverType = iota + 1
	Trending
	Recent
)

type discoverRoute struct {
	name     string
	resource string
	slug     string
	kind     MappingKind
}

var discoverRoutes = map[DiscoverType]discoverRoute{
	Recommended: {name: "Featured", resource: "posts", slug: "recommended", kind: PostsType},
	Trending:    {name: "Trending", resource: "users", slug: "trending", kind: UsersType},
	Recent:      {name: "Recent", resource: "posts", slug: "recent", kind: PostsType},
}

// DiscoverTypes returns all discover types
func DiscoverTypes() []DiscoverType {
	return []DiscoverType{Recommended, Trending, Recent}
}

func (d DiscoverType) route() discoverRoute {
	if r, ok := discoverRoutes[d]; ok {
		return r
	}
	panic(&missingMappingError{tag: TagDiscover, detail: "unknown discover type"})
}

// Name is the display name of the feed
func (d DiscoverType) Name() string {
	return d.route().name
}

// Slug is the final path segment of the feed
func (d DiscoverType) Slug() string {
	return d.route().slug
}

// MappingKind is the kind of the feed's response body
func (d DiscoverType) MappingKind() MappingKind {
	return d.route().kind
}

func (d DiscoverType) String() string {
	if r, ok := discoverRoutes[d]; ok {
		return r.name
	}
	return "Unknown"
}
