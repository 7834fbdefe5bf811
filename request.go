package elloapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Request is the wire-level shape of an endpoint request
type Request struct {
	Endpoint Endpoint
	Method   MethodName
	Path     string
	Headers  HeaderSet
	Params   Params
	Kind     MappingKind
	// Err is set when the endpoint cannot be sent (a malformed continuation) - the request must not be dispatched
	Err error
}

// BuildRequest derives the request for an endpoint
func BuildRequest(e Endpoint, tokens TokenProvider, clock Clock, locale string) Request {
	return Request{
		Endpoint: e,
		Method:   MethodOf(e),
		Path:     PathOf(e),
		Headers:  Headers(e, tokens, clock, locale),
		Params:   ParametersOf(e),
		Kind:     KindOf(e),
		Err:      Validate(e),
	}
}

// URL is the full request URL - params are sent as the query string unless the method has a body
func (r Request) URL(baseUrl string) (url string, err error) {
	if r.Err != nil {
		return "", r.Err
	}
	if baseUrl == "" {
		return "", ErrNoBaseURL
	}
	url = strings.TrimSuffix(baseUrl, "/") + r.Path
	if !r.Method.HasBody() {
		var q string
		if q, err = r.Params.Query(); err == nil {
			url += q
		}
	}
	return
}

// Body is the JSON request body (nil when the method has no body, or there are no params)
func (r Request) Body() (body []byte, err error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Method.HasBody() && r.Params.Len() > 0 {
		body, err = json.Marshal(r.Params)
	}
	return
}

// HTTPRequest builds the http.Request against a base URL (e.g. "https://ello.co")
func (r Request) HTTPRequest(ctx context.Context, baseUrl string) (request *http.Request, err error) {
	var url string
	if url, err = r.URL(baseUrl); err == nil {
		var data []byte
		if data, err = r.Body(); err == nil {
			var body io.Reader
			if data != nil {
				body = bytes.NewReader(data)
			}
			if request, err = http.NewRequestWithContext(ctx, string(r.Method), url, body); err == nil {
				r.Headers.Apply(request.Header)
			}
		}
	}
	return
}
