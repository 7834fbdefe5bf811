package elloapi

import (
	"embed"
	"slices"
)

//go:embed sample_data/*.json
var sampleDataFS embed.FS

// SampleData is the canned response body served for the endpoint in stub mode
//
// a variant specific fixture is used when there is one, otherwise the fixture for the variant's mapping kind.
// Endpoints that expect no content (NoContentType and HEAD requests) have an empty body. The returned bytes are
// a copy, identical for structurally equal endpoints.
func SampleData(e Endpoint) []byte {
	base := Unwrap(mustEndpoint(e))
	kind := KindOf(base)
	if kind == NoContentType || MethodOf(base) == HEAD {
		return []byte{}
	}
	if data, ok := sampleFixture(base.Tag().String()); ok {
		return data
	}
	if data, ok := sampleFixture(kind.String()); ok {
		return data
	}
	panic(&missingMappingError{tag: base.Tag(), detail: "no sample data for " + kind.String()})
}

func sampleFixture(name string) ([]byte, bool) {
	if data, err := sampleDataFS.ReadFile("sample_data/" + name + ".json"); err == nil {
		return slices.Clone(data), true
	}
	return nil, false
}
