package elloapi

import (
	"context"
	"github.com/ello/elloapi/common"
	"github.com/ello/elloapi/coverage"
	"github.com/ello/elloapi/logging"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"time"
)

// Response is the raw outcome of a dispatched request
type Response struct {
	Endpoint Endpoint
	Status   int
	Header   http.Header
	Body     []byte
	Kind     MappingKind
}

// OK reports whether the status is 2xx
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Next is the continuation for the next page (from the response's Link header)
//
// returns false when there is no next page
func (r *Response) Next() (InfiniteScroll, bool, error) {
	return NextPage(r.Endpoint, r.Header)
}

// Transport performs a request
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// HTTPTransport is the live Transport
type HTTPTransport struct {
	BaseURL string
	HttpDo  common.HttpDo
	// Limiter, when set, is waited on before each request
	Limiter  *rate.Limiter
	Logger   zerolog.Logger
	Coverage coverage.Collector
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(baseUrl string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL:  baseUrl,
		HttpDo:   http.DefaultClient,
		Logger:   logging.Nop(),
		Coverage: coverage.NewNullCoverage(),
	}
}

func (t *HTTPTransport) Do(ctx context.Context, req Request) (*Response, error) {
	route := routeFor(req.Endpoint)
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	hr, err := req.HTTPRequest(ctx, t.BaseURL)
	if err != nil {
		return nil, err
	}
	httpDo := t.HttpDo
	if httpDo == nil {
		httpDo = http.DefaultClient
	}
	start := time.Now()
	res, err := httpDo.Do(hr)
	if err != nil {
		t.failed(route, hr, err)
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.failed(route, hr, err)
		return nil, err
	}
	dur := time.Since(start)
	t.coverage().ReportTiming(route, hr, res.StatusCode, dur)
	t.Logger.Debug().
		Str("tag", route.Name).
		Str("method", hr.Method).
		Str("url", hr.URL.String()).
		Int("status", res.StatusCode).
		Dur("duration", dur).
		Msg("dispatched")
	return &Response{
		Endpoint: req.Endpoint,
		Status:   res.StatusCode,
		Header:   res.Header,
		Body:     body,
		Kind:     req.Kind,
	}, nil
}

func (t *HTTPTransport) coverage() coverage.Collector {
	if t.Coverage == nil {
		return coverage.NewNullCoverage()
	}
	return t.Coverage
}

func (t *HTTPTransport) failed(route Route, hr *http.Request, err error) {
	t.coverage().ReportFailure(route, hr, err)
	t.Logger.Warn().
		Err(err).
		Str("tag", route.Name).
		Str("method", hr.Method).
		Str("url", hr.URL.String()).
		Msg("dispatch failed")
}

// StubTransport serves every request from SampleData
type StubTransport struct{}

var _ Transport = StubTransport{}

func (StubTransport) Do(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Err != nil {
		return nil, req.Err
	}
	status := http.StatusOK
	if req.Kind == NoContentType {
		status = http.StatusNoContent
	}
	return &Response{
		Endpoint: req.Endpoint,
		Status:   status,
		Header:   http.Header{hdrContentType: []string{contentTypeJson}},
		Body:     SampleData(req.Endpoint),
		Kind:     req.Kind,
	}, nil
}
