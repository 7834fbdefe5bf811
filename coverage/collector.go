package coverage

import (
	"github.com/ello/elloapi/common"
	"io"
	"net/http"
	"time"
)

// Collector is the interface for collecting coverage information
type Collector interface {
	LoadSpec(r io.Reader) (err error)
	// ReportRoute records a route as known (e.g. from the catalog) without it having been dispatched
	ReportRoute(route common.Route)
	ReportFailure(route common.Route, req *http.Request, err error)
	ReportTiming(route common.Route, req *http.Request, status int, dur time.Duration)
	HasFailures() bool
}
