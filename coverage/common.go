package coverage

import (
	"github.com/ello/elloapi/common"
	"net/http"
)

// Endpoint provides coverage information about a path template
type Endpoint struct {
	Path    string
	Methods map[string]*Method
	Common
}

// Method provides coverage information about a method on a path template
type Method struct {
	Method string
	// Routes are the names of the routes reported for the method
	Routes []string
	Common
}

// Common provides common coverage information
type Common struct {
	Failures []Failure
	Timings  Timings
}

// Failure provides coverage information about a failed dispatch
type Failure struct {
	Route   common.Route
	Request *http.Request
	Error   error
}
