package elloapi

import (
	"fmt"
	"time"
)

// Endpoint is a request shape from the Ello API catalog
//
// the set of implementations is closed (one value struct per Tag) - every derived view (path, parameters,
// method, mapping kind, header policy) is a pure function of the value
type Endpoint interface {
	Tag() Tag
	pathVars() pathParams
	parameters() Params
}

// conditional is implemented by variants that make conditional requests
type conditional interface {
	ifModifiedSince() time.Time
}

// HeaderPolicy is the header behaviour of a variant
type HeaderPolicy struct {
	RequiresAuth bool
	// Conditional is set for the new content variants, which send IfModifiedSince as If-Modified-Since
	Conditional     bool
	IfModifiedSince time.Time
}

// Unwrap resolves an endpoint to the variant that determines its routing
//
// an InfiniteScroll resolves to its (innermost) base
func Unwrap(e Endpoint) Endpoint {
	for {
		if is, ok := e.(InfiniteScroll); ok {
			e = is.Base
			continue
		}
		return e
	}
}

// PathOf is the request path of the endpoint (without any query string)
func PathOf(e Endpoint) string {
	e = mustEndpoint(e)
	base := Unwrap(e)
	r := lookup(base.Tag())
	pvs := base.pathVars()
	if pvs.Len() != r.vars {
		panic(fmt.Errorf("%s: expected %d path values, got %d", base.Tag(), r.vars, pvs.Len()))
	}
	path, err := r.template.PathFrom(pvs)
	if err != nil {
		panic(fmt.Errorf("%s: %w", base.Tag(), err))
	}
	return path
}

// ParametersOf is the ordered set of parameters sent with the endpoint's request
func ParametersOf(e Endpoint) Params {
	return mustEndpoint(e).parameters()
}

// MethodOf is the HTTP method of the endpoint
func MethodOf(e Endpoint) MethodName {
	return lookup(Unwrap(mustEndpoint(e)).Tag()).method
}

// KindOf is the mapping kind of a successful response body for the endpoint
func KindOf(e Endpoint) MappingKind {
	base := Unwrap(mustEndpoint(e))
	r := lookup(base.Tag())
	kind := r.kind
	if r.resolve != nil {
		kind = r.resolve(base)
	}
	if !kind.IsValid() {
		panic(&missingMappingError{tag: base.Tag(), detail: "no mapping kind"})
	}
	return kind
}

// PolicyOf is the header policy of the endpoint
func PolicyOf(e Endpoint) HeaderPolicy {
	base := Unwrap(mustEndpoint(e))
	result := HeaderPolicy{RequiresAuth: RequiresAuth(base.Tag())}
	if c, ok := base.(conditional); ok {
		result.Conditional = true
		result.IfModifiedSince = c.ifModifiedSince()
	}
	return result
}

// Validate checks that an endpoint can be sent - every continuation wrapped around the base must merge cleanly
//
// a ContinuationError means the pagination sequence is finished, the request must not be sent as a first page
func Validate(e Endpoint) error {
	for e = mustEndpoint(e); ; {
		is, ok := e.(InfiniteScroll)
		if !ok {
			return nil
		}
		if err := is.Validate(); err != nil {
			return err
		}
		e = mustEndpoint(is.Base)
	}
}

// Describe is a short human-readable description of the endpoint (e.g. for logs)
func Describe(e Endpoint) string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%+v", e.Tag(), e)
}

func mustEndpoint(e Endpoint) Endpoint {
	if e == nil {
		panic(&missingMappingError{detail: "nil endpoint"})
	}
	return e
}
