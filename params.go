package elloapi

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Param is a single named request parameter
type Param struct {
	Name  string
	Value any
}

// Params is an ordered set of request parameters
//
// values are scalars (string, int, bool), string slices, or maps - they are routed as the query
// string for read-shaped requests and as a JSON body for write-shaped requests
type Params []Param

// Set sets a parameter value - an existing parameter keeps its position
func (p *Params) Set(name string, value any) {
	for i := range *p {
		if (*p)[i].Name == name {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Name: name, Value: value})
}

// SetIf sets the parameter only when the value is not empty
func (p *Params) SetIf(name string, value string) {
	if value != "" {
		p.Set(name, value)
	}
}

func (p Params) Get(name string) (any, bool) {
	for _, pm := range p {
		if pm.Name == name {
			return pm.Value, true
		}
	}
	return nil, false
}

func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

func (p Params) Len() int {
	return len(p)
}

func (p Params) Keys() []string {
	result := make([]string, len(p))
	for i, pm := range p {
		result[i] = pm.Name
	}
	return result
}

func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Overlay returns a copy of the params with every parameter of other set over it (other wins on collision)
func (p Params) Overlay(other Params) Params {
	result := p.Clone()
	for _, pm := range other {
		result.Set(pm.Name, pm.Value)
	}
	return result
}

// AsMap returns the params as an (unordered) map
func (p Params) AsMap() map[string]any {
	result := make(map[string]any, len(p))
	for _, pm := range p {
		result[pm.Name] = pm.Value
	}
	return result
}

// MarshalJSON encodes the params as a JSON object, preserving parameter order
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pm := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(pm.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(pm.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// paramsFromMap builds params from an unordered body map (keys sorted, so the result is deterministic)
func paramsFromMap[V any](m map[string]V) Params {
	if len(m) == 0 {
		return nil
	}
	result := make(Params, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		result = append(result, Param{Name: k, Value: m[k]})
	}
	return result
}

const (
	perPageParam       = "per_page"
	defaultPerPage     = 10
	onboardingPerPage  = 25
	defaultPostCount   = 10
	includeRecentPosts = "include_recent_posts"
)

func perPage(n int) Params {
	return Params{{Name: perPageParam, Value: n}}
}
