package coverage

import (
	"context"
	"github.com/ello/elloapi/common"
	"github.com/go-andiamo/chioas"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"
)

func NewCoverage() *Coverage {
	return &Coverage{
		Endpoints:       make(map[string]*Endpoint),
		normalizedPaths: make(map[string]map[string]struct{}),
	}
}

// Coverage is the default coverage information
type Coverage struct {
	Endpoints map[string]*Endpoint
	OAS       *chioas.Definition
	Common
	mutex           sync.RWMutex
	normalizedPaths map[string]map[string]struct{}
}

var _ Collector = (*Coverage)(nil)

func (c *Coverage) ReportRoute(route common.Route) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.add(route)
}

func (c *Coverage) ReportFailure(route common.Route, req *http.Request, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	fail := Failure{
		Route:   route,
		Request: requestShallowClone(req),
		Error:   err,
	}
	covE, covM := c.add(route)
	if covE != nil {
		covE.Failures = append(covE.Failures, fail)
		covM.Failures = append(covM.Failures, fail)
	}
	c.Failures = append(c.Failures, fail)
}

func (c *Coverage) ReportTiming(route common.Route, req *http.Request, status int, dur time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	timing := Timing{
		Route:    route,
		Request:  requestShallowClone(req),
		Status:   status,
		Duration: dur,
	}
	covE, covM := c.add(route)
	if covE != nil {
		covE.Timings = append(covE.Timings, timing)
		covM.Timings = append(covM.Timings, timing)
	}
	c.Timings = append(c.Timings, timing)
}

func (c *Coverage) HasFailures() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.Failures) > 0
}

func requestShallowClone(req *http.Request) *http.Request {
	if req == nil {
		return nil
	}
	r2 := req.Clone(context.Background())
	// never hold on to live bodies...
	r2.Body = http.NoBody
	r2.GetBody = func() (io.ReadCloser, error) {
		return http.NoBody, nil
	}
	r2.Trailer = nil
	r2.MultipartForm = nil
	return r2
}

func (c *Coverage) addNormalizedPath(path string) {
	nPath := normalizePath(path)
	if m, ok := c.normalizedPaths[nPath]; ok {
		m[path] = struct{}{}
	} else {
		c.normalizedPaths[nPath] = map[string]struct{}{path: {}}
	}
}

func (c *Coverage) add(route common.Route) (covE *Endpoint, covM *Method) {
	if route == nil {
		return nil, nil
	}
	path := route.Path()
	c.addNormalizedPath(path)
	var ok bool
	if covE, ok = c.Endpoints[path]; !ok {
		covE = &Endpoint{
			Path:    path,
			Methods: make(map[string]*Method),
		}
		c.Endpoints[path] = covE
	}
	if covM, ok = covE.Methods[route.MethodName()]; !ok {
		covM = &Method{
			Method: route.MethodName(),
		}
		covE.Methods[route.MethodName()] = covM
	}
	if name := route.RouteName(); !slices.Contains(covM.Routes, name) {
		covM.Routes = append(covM.Routes, name)
	}
	return covE, covM
}
