package elloapi

import (
	"net/http"
	"strings"
)

type MethodName string

func (m MethodName) Normalize() MethodName {
	return MethodName(strings.ToUpper(string(m)))
}

// HasBody reports whether parameters for the method travel in the request body
// (rather than in the query string)
func (m MethodName) HasBody() bool {
	switch m.Normalize() {
	case POST, PUT, PATCH:
		return true
	}
	return false
}

const (
	GET    MethodName = http.MethodGet
	HEAD   MethodName = http.MethodHead
	POST   MethodName = http.MethodPost
	PUT    MethodName = http.MethodPut
	PATCH  MethodName = http.MethodPatch
	DELETE MethodName = http.MethodDelete
)
