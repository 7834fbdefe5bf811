package elloapi

import (
	"encoding/json"
	"fmt"
	"github.com/go-andiamo/gopt"
	"net/http"
	"net/url"
	"strings"
)

// Link is a single entry of an RFC 8288 Link header
type Link struct {
	URL string
	Rel string
}

// HasRel reports whether the link's relation types (space separated) include rel, case-insensitively
func (l Link) HasRel(rel string) bool {
	for _, r := range strings.Fields(l.Rel) {
		if strings.EqualFold(r, rel) {
			return true
		}
	}
	return false
}

// ParseLinkHeader parses the entries of Link header values, in order
//
// entries without a URL in angle brackets are skipped
func ParseLinkHeader(values ...string) []Link {
	result := make([]Link, 0)
	for _, value := range values {
		for _, part := range splitLinks(value) {
			part = strings.TrimSpace(part)
			if !strings.HasPrefix(part, "<") {
				continue
			}
			end := strings.Index(part, ">")
			if end < 0 {
				continue
			}
			lnk := Link{URL: part[1:end]}
			for _, attr := range strings.Split(part[end+1:], ";") {
				if name, val, ok := strings.Cut(strings.TrimSpace(attr), "="); ok && strings.EqualFold(strings.TrimSpace(name), "rel") {
					lnk.Rel = strings.Trim(strings.TrimSpace(val), `"`)
				}
			}
			result = append(result, lnk)
		}
	}
	return result
}

// splitLinks splits a Link header value on the commas outside of angle brackets and quotes
func splitLinks(value string) []string {
	result := make([]string, 0, 2)
	inUrl, inQuote := false, false
	start := 0
	for i, ch := range value {
		switch {
		case ch == '<' && !inQuote:
			inUrl = true
		case ch == '>' && !inQuote:
			inUrl = false
		case ch == '"' && !inUrl:
			inQuote = !inQuote
		case ch == ',' && !inUrl && !inQuote:
			result = append(result, value[start:i])
			start = i + 1
		}
	}
	return append(result, value[start:])
}

// ParseQueryItems extracts the query items of a URL, preserving their order (and any repeats)
func ParseQueryItems(rawUrl string) ([]QueryItem, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}
	result := make([]QueryItem, 0)
	for _, part := range strings.Split(u.RawQuery, "&") {
		if part == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(part, "=")
		var name, value string
		if name, err = url.QueryUnescape(rawName); err != nil {
			return nil, newContinuationError(rawName, err.Error())
		}
		if value, err = url.QueryUnescape(rawValue); err != nil {
			return nil, newContinuationError(name, err.Error(), rawValue)
		}
		result = append(result, QueryItem{Name: name, Value: value})
	}
	return result, nil
}

// NextPage creates the continuation of base from the rel="next" Link of a response header
//
// the next link carries the whole continuation, so a base that is itself an InfiniteScroll is unwrapped first
//
// when there is no next link it returns false - the pagination sequence is finished
func NextPage(base Endpoint, header http.Header) (InfiniteScroll, bool, error) {
	for _, lnk := range ParseLinkHeader(header.Values("Link")...) {
		if lnk.HasRel("next") {
			return nextPageFrom(base, lnk.URL)
		}
	}
	return InfiniteScroll{}, false, nil
}

// NextPageFromBody creates the continuation of base from a next page URL embedded in a JSON response body
// (e.g. path "meta.next")
//
// when the body has no (or an empty) next link it returns false - the pagination sequence is finished
func NextPageFromBody(base Endpoint, body []byte, path string) (InfiniteScroll, bool, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return InfiniteScroll{}, false, err
	}
	if o, _ := gopt.ExtractJsonPath[any](m, path); o.IsPresent() {
		switch v := o.Default(nil).(type) {
		case nil:
			return InfiniteScroll{}, false, nil
		case string:
			if v == "" {
				return InfiniteScroll{}, false, nil
			}
			return nextPageFrom(base, v)
		default:
			return InfiniteScroll{}, false, newContinuationError(path, fmt.Sprintf("next link is %T, not a string", v))
		}
	}
	return InfiniteScroll{}, false, nil
}

func nextPageFrom(base Endpoint, rawUrl string) (InfiniteScroll, bool, error) {
	items, err := ParseQueryItems(rawUrl)
	if err != nil {
		return InfiniteScroll{}, false, err
	}
	is, err := NewInfiniteScroll(Unwrap(base), items)
	if err != nil {
		return InfiniteScroll{}, false, err
	}
	return is, true, nil
}
