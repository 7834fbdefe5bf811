package elloapi

import (
	"context"
	"encoding/json"
	"github.com/ello/elloapi/common"
	"github.com/ello/elloapi/coverage"
	"github.com/ello/elloapi/logging"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// Deserializer decodes a response body according to its mapping kind
type Deserializer interface {
	Decode(body []byte, kind MappingKind) (any, error)
}

type DeserializerFunc func(body []byte, kind MappingKind) (any, error)

func (f DeserializerFunc) Decode(body []byte, kind MappingKind) (any, error) {
	return f(body, kind)
}

// JSONDeserializer decodes any body as generic JSON (nil for no content)
var JSONDeserializer Deserializer = DeserializerFunc(func(body []byte, kind MappingKind) (any, error) {
	if kind == NoContentType || len(body) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return result, nil
})

// Provider builds requests for endpoints and dispatches them to the live or stub transport
//
// the mode is read once per request - a provider created WithMode ignores the process-wide mode
type Provider struct {
	baseUrl   string
	locale    string
	tokens    TokenProvider
	clock     Clock
	httpDo    common.HttpDo
	timeout   time.Duration
	logger    zerolog.Logger
	limiter   *rate.Limiter
	mode      *Mode
	live      Transport
	stub      Transport
	coverage  coverage.Collector
	client    ClientCredentials
	initError error
}

var _ ProviderInit = (*Provider)(nil)

func NewProvider(withs ...With) (*Provider, error) {
	result := &Provider{
		tokens:   NoToken,
		clock:    SystemClock,
		logger:   logging.Nop(),
		stub:     StubTransport{},
		coverage: coverage.NewNullCoverage(),
	}
	for _, w := range withs {
		if w != nil {
			w.Init(result)
		}
	}
	if result.initError != nil {
		return nil, result.initError
	}
	if result.live == nil {
		httpDo := result.httpDo
		if httpDo == nil {
			httpDo = &http.Client{Timeout: result.timeout}
		}
		result.live = &HTTPTransport{
			BaseURL:  result.baseUrl,
			HttpDo:   httpDo,
			Limiter:  result.limiter,
			Logger:   result.logger,
			Coverage: result.coverage,
		}
	}
	return result, nil
}

// Mode is the mode the next request will be dispatched in
func (p *Provider) Mode() Mode {
	if p.mode != nil {
		return *p.mode
	}
	return CurrentMode()
}

// Client is the configured client credentials (for the token endpoints)
func (p *Provider) Client() ClientCredentials {
	return p.client
}

// Request builds the request for the endpoint with the provider's token, clock and locale
func (p *Provider) Request(e Endpoint) Request {
	return BuildRequest(e, p.tokens, p.clock, p.locale)
}

// Do dispatches the endpoint's request
//
// a cancelled context returns the context error and no response, a malformed continuation returns its
// ContinuationError without dispatching
func (p *Provider) Do(ctx context.Context, e Endpoint) (*Response, error) {
	mode := p.Mode()
	req := p.Request(e)
	if req.Err != nil {
		p.logger.Warn().Err(req.Err).Str("tag", routeFor(e).Name).Msg("not dispatched")
		return nil, req.Err
	}
	transport := p.live
	if mode == StubMode {
		transport = p.stub
	}
	res, err := transport.Do(ctx, req)
	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	if err != nil {
		return nil, err
	}
	p.logger.Debug().
		Str("tag", routeFor(e).Name).
		Str("method", string(req.Method)).
		Str("path", req.Path).
		Str("mode", mode.String()).
		Int("status", res.Status).
		Msg("response")
	return res, nil
}

// Fetch dispatches the endpoint's request and decodes a successful response body
//
// a non-2xx response returns a StatusError (carrying the error envelope body), the response is returned in either case
func (p *Provider) Fetch(ctx context.Context, e Endpoint, d Deserializer) (any, *Response, error) {
	if d == nil {
		return nil, nil, ErrNoDeserializer
	}
	res, err := p.Do(ctx, e)
	if err != nil {
		return nil, nil, err
	}
	if !res.OK() {
		p.logger.Warn().Str("tag", routeFor(e).Name).Int("status", res.Status).Msg("unexpected status")
		return nil, res, newStatusError(res.Status, res.Body, e)
	}
	v, err := d.Decode(res.Body, res.Kind)
	return v, res, err
}
