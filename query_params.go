package elloapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Query encodes the params as a query string (including the leading "?", or "" when there are no params)
//
// slices are encoded as repeated "name[]=value" items in order, maps as JSON
func (p Params) Query() (string, error) {
	var buf strings.Builder
	write := func(key string, value string, bare bool) {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(key))
		if !bare {
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}
	for _, pm := range p {
		switch v := pm.Value.(type) {
		case nil:
			write(pm.Name, "", true)
		case string:
			write(pm.Name, v, false)
		case []string:
			key := pm.Name
			if !strings.HasSuffix(key, "[]") {
				key += "[]"
			}
			for _, sv := range v {
				write(key, sv, false)
			}
		case map[string]any, map[string]string, map[string][]string:
			data, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			write(pm.Name, string(data), false)
		default:
			write(pm.Name, fmt.Sprintf("%v", v), false)
		}
	}
	if buf.Len() == 0 {
		return "", nil
	}
	return "?" + buf.String(), nil
}
