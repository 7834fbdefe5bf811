package coverage

import (
	"github.com/ello/elloapi/common"
	"io"
	"net/http"
	"time"
)

func NewNullCoverage() Collector {
	return &nullCoverage{}
}

type nullCoverage struct {
	hasFailures bool
}

var _ Collector = (*nullCoverage)(nil)

func (n *nullCoverage) LoadSpec(r io.Reader) (err error) {
	return nil
}

func (n *nullCoverage) ReportRoute(route common.Route) {}

func (n *nullCoverage) ReportFailure(route common.Route, req *http.Request, err error) {
	n.hasFailures = true
}

func (n *nullCoverage) ReportTiming(route common.Route, req *http.Request, status int, dur time.Duration) {
}

func (n *nullCoverage) HasFailures() bool {
	return n.hasFailures
}
