package coverage

import (
	"errors"
	"github.com/ello/elloapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
	"time"
)

func TestCoverage_ReportRoute(t *testing.T) {
	cov := NewCoverage()
	cov.ReportRoute(&testRoute{"PostDetail", "GET", "/api/v2/posts/{postParam}"})
	cov.ReportRoute(&testRoute{"PostDetail", "GET", "/api/v2/posts/{postParam}"})
	cov.ReportRoute(&testRoute{"DeletePost", "DELETE", "/api/v2/posts/{postId}"})
	cov.ReportRoute(nil)
	assert.False(t, cov.HasFailures())
	require.Len(t, cov.Endpoints, 2)
	ep := cov.Endpoints["/api/v2/posts/{postParam}"]
	require.NotNil(t, ep)
	require.Len(t, ep.Methods, 1)
	assert.Equal(t, []string{"PostDetail"}, ep.Methods["GET"].Routes)
	assert.Len(t, cov.normalizedPaths["/api/v2/posts/{}"], 2)
}

func TestCoverage_ReportFailure(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		cov := NewCoverage()
		cov.ReportFailure(nil, nil, errors.New("fooey"))
		assert.True(t, cov.HasFailures())
		assert.Len(t, cov.Endpoints, 0)
		assert.Len(t, cov.Failures, 1)
	})
	t.Run("route", func(t *testing.T) {
		cov := NewCoverage()
		req, _ := http.NewRequest(http.MethodGet, "http://localhost/api/v2/categories", nil)
		cov.ReportFailure(&testRoute{"Categories", "GET", "/api/v2/categories"}, req, errors.New("fooey"))
		assert.True(t, cov.HasFailures())
		assert.Len(t, cov.Failures, 1)
		require.Len(t, cov.Endpoints, 1)
		ep := cov.Endpoints["/api/v2/categories"]
		assert.Len(t, ep.Failures, 1)
		assert.Len(t, ep.Methods["GET"].Failures, 1)
		assert.Equal(t, http.NoBody, ep.Failures[0].Request.Body)
	})
}

func TestCoverage_ReportTiming(t *testing.T) {
	cov := NewCoverage()
	r := &testRoute{"Categories", "GET", "/api/v2/categories"}
	cov.ReportTiming(r, nil, http.StatusOK, 10*time.Millisecond)
	cov.ReportTiming(r, nil, http.StatusOK, 30*time.Millisecond)
	assert.False(t, cov.HasFailures())
	assert.Len(t, cov.Timings, 2)
	stats, ok := cov.Endpoints["/api/v2/categories"].Methods["GET"].Timings.Stats()
	require.True(t, ok)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 20*time.Millisecond, stats.Mean)
	assert.Equal(t, 10*time.Millisecond, stats.StdDev)
	assert.Equal(t, 10*time.Millisecond, stats.Minimum)
	assert.Equal(t, 30*time.Millisecond, stats.Maximum)
	assert.Equal(t, 20*time.Millisecond, stats.P50)
}

func TestTimings_Stats(t *testing.T) {
	_, ok := Timings{}.Stats()
	assert.False(t, ok)

	timings := make(Timings, 0, 11)
	for i := 0; i <= 10; i++ {
		timings = append(timings, Timing{Duration: time.Duration(10-i) * time.Second})
	}
	stats, ok := timings.Stats()
	require.True(t, ok)
	assert.Equal(t, 11, stats.Count)
	assert.Equal(t, 5*time.Second, stats.Mean)
	assert.Equal(t, 5*time.Second, stats.P50)
	assert.Equal(t, 9*time.Second, stats.P90)
	assert.Equal(t, 9900*time.Millisecond, stats.P99)
	assert.Equal(t, time.Duration(0), stats.Minimum)
	assert.Equal(t, 10*time.Second, stats.Maximum)
}

func TestNullCoverage(t *testing.T) {
	cov := NewNullCoverage()
	require.NoError(t, cov.LoadSpec(nil))
	cov.ReportRoute(&testRoute{"Categories", "GET", "/api/v2/categories"})
	cov.ReportTiming(nil, nil, http.StatusOK, time.Second)
	assert.False(t, cov.HasFailures())
	cov.ReportFailure(nil, nil, errors.New("fooey"))
	assert.True(t, cov.HasFailures())
}

type testRoute struct {
	name   string
	method string
	path   string
}

var _ common.Route = (*testRoute)(nil)

func (r *testRoute) RouteName() string {
	return r.name
}

func (r *testRoute) MethodName() string {
	return r.method
}

func (r *testRoute) Path() string {
	return r.path
}
