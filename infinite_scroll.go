package elloapi

import (
	"strings"
)

// QueryItem is a raw name/value pair from a continuation (next page) link
type QueryItem struct {
	Name  string
	Value string
}

// InfiniteScroll wraps a base endpoint with the continuation of a previous page
//
// the path, method, headers and mapping kind are those of the base - the parameters are the base's parameters with
// every continuation item set over them (the continuation wins, values stay as strings)
type InfiniteScroll struct {
	Base       Endpoint
	QueryItems []QueryItem
}

// NewInfiniteScroll creates a continuation of the base endpoint
//
// a continuation that cannot be merged with the base parameters returns a ContinuationError - the pagination
// sequence should then be treated as finished
func NewInfiniteScroll(base Endpoint, items []QueryItem) (InfiniteScroll, error) {
	result := InfiniteScroll{
		Base:       mustEndpoint(base),
		QueryItems: append([]QueryItem(nil), items...),
	}
	return result, result.Validate()
}

func (e InfiniteScroll) Tag() Tag { return TagInfiniteScroll }

func (e InfiniteScroll) pathVars() pathParams {
	return mustEndpoint(e.Base).pathVars()
}

// parameters of an invalid continuation are the base parameters alone
func (e InfiniteScroll) parameters() Params {
	base := mustEndpoint(e.Base).parameters()
	if result, err := mergeContinuation(base, e.QueryItems); err == nil {
		return result
	}
	return base
}

// Validate checks that the continuation can be merged with the base parameters
func (e InfiniteScroll) Validate() error {
	_, err := mergeContinuation(mustEndpoint(e.Base).parameters(), e.QueryItems)
	return err
}

func mergeContinuation(base Params, items []QueryItem) (Params, error) {
	var cont Params
	for _, item := range items {
		if item.Name == "" || item.Name == "[]" {
			return nil, newContinuationError(item.Name, "empty item name", item.Value)
		}
		if key, isArray := strings.CutSuffix(item.Name, "[]"); isArray {
			ev, ok := cont.Get(key)
			if !ok {
				cont.Set(key, []string{item.Value})
			} else if evs, ok := ev.([]string); ok {
				cont.Set(key, append(evs, item.Value))
			} else {
				return nil, newContinuationError(key, "mixed scalar and array values", ev.(string), item.Value)
			}
		} else if ev, ok := cont.Get(item.Name); ok {
			if evs, isString := ev.(string); !isString {
				return nil, newContinuationError(item.Name, "mixed scalar and array values", item.Value)
			} else if evs != item.Value {
				return nil, newContinuationError(item.Name, "conflicting values", evs, item.Value)
			}
		} else {
			cont.Set(item.Name, item.Value)
		}
	}
	for _, pm := range cont {
		if bv, ok := base.Get(pm.Name); ok {
			if _, isScalar := pm.Value.(string); isScalar && !isScalarParam(bv) {
				return nil, newContinuationError(pm.Name, "scalar value for non-scalar parameter", pm.Value.(string))
			}
		}
	}
	return base.Overlay(cont), nil
}

func isScalarParam(v any) bool {
	switch v.(type) {
	case []string, map[string]any, map[string]string, map[string][]string:
		return false
	}
	return true
}
