package elloapi

import (
	"fmt"
	"github.com/go-andiamo/urit"
	"net/url"
)

// pathParams are positional values substituted into a path template
//
// each value is escaped as a single path segment, so "/", "?" and "#" in a value never change the path shape or query
type pathParams []any

var _ urit.PathVars = pathParams{}

func pathVars(values ...any) pathParams {
	return values
}

func (p pathParams) GetPositional(position int) (string, bool) {
	if position >= 0 && position < len(p) {
		v := p[position]
		switch t := v.(type) {
		case string:
			return url.PathEscape(t), true
		default:
			return url.PathEscape(fmt.Sprintf("%v", v)), true
		}
	}
	return "", false
}

func (p pathParams) GetNamed(name string, position int) (string, bool) {
	return "", false
}

func (p pathParams) GetNamedFirst(name string) (string, bool) {
	return "", false
}

func (p pathParams) GetNamedLast(name string) (string, bool) {
	return "", false
}

func (p pathParams) Get(idents ...interface{}) (string, bool) {
	if len(idents) == 1 {
		if pos, ok := idents[0].(int); ok {
			return p.GetPositional(pos)
		}
	}
	return "", false
}

func (p pathParams) GetAll() []urit.PathVar {
	return nil
}

func (p pathParams) Len() int {
	return len(p)
}

func (p pathParams) Clear() {}

func (p pathParams) VarsType() urit.PathVarsType {
	return urit.Positions
}

func (p pathParams) AddNamedValue(name string, val interface{}) error {
	return fmt.Errorf("path params are positional (cannot add %q)", name)
}

func (p pathParams) AddPositionalValue(val interface{}) error {
	return fmt.Errorf("path params are immutable")
}
