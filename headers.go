package elloapi

import (
	"net/http"
	"strings"
	"time"
)

const (
	hdrAccept          = "Accept"
	hdrContentType     = "Content-Type"
	hdrAcceptLanguage  = "Accept-Language"
	hdrAuthorization   = "Authorization"
	hdrIfModifiedSince = "If-Modified-Since"
	contentTypeJson    = "application/json"
)

type Header struct {
	Name  string
	Value string
}

// HeaderSet is an ordered set of request headers
type HeaderSet []Header

// Get returns the value of the named header (case-insensitive)
func (h HeaderSet) Get(name string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return "", false
}

func (h HeaderSet) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

func (h HeaderSet) Names() []string {
	result := make([]string, len(h))
	for i, hdr := range h {
		result[i] = hdr.Name
	}
	return result
}

// Apply sets every header on the http.Header
func (h HeaderSet) Apply(to http.Header) {
	for _, hdr := range h {
		to.Set(hdr.Name, hdr.Value)
	}
}

// HTTPDate formats a time as an HTTP-date (RFC 7231, always GMT)
func HTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// Headers computes the header set for an endpoint
//
// Authorization is set only when the endpoint requires auth and the token provider has a token, If-Modified-Since
// only for the new content variants. The clock is only passed to the token provider - a nil clock passes the zero
// time, so the provider's expiry check is skipped.
func Headers(e Endpoint, tokens TokenProvider, clock Clock, locale string) HeaderSet {
	policy := PolicyOf(e)
	result := HeaderSet{
		{Name: hdrAccept, Value: contentTypeJson},
		{Name: hdrContentType, Value: contentTypeJson},
		{Name: hdrAcceptLanguage, Value: locale},
	}
	if policy.RequiresAuth {
		var now time.Time
		if clock != nil {
			now = clock.Now()
		}
		if av, ok := bearer(tokens, now); ok {
			result = append(result, Header{Name: hdrAuthorization, Value: av.String()})
		}
	}
	if policy.Conditional {
		result = append(result, Header{Name: hdrIfModifiedSince, Value: HTTPDate(policy.IfModifiedSince)})
	}
	return result
}
