package common

// Route is the interface that describes a method on a (templated) API path
type Route interface {
	RouteName() string
	MethodName() string // typically returns "GET", "POST", "DELETE" etc.
	// Path is the path template (e.g. "/api/v2/posts/{postId}")
	Path() string
}
