package coverage

import (
	"github.com/go-andiamo/splitter"
	"strings"
)

// normalizePath replaces every path variable with "{}" - both "{name}" and ":name" forms
func normalizePath(path string) string {
	if parts, err := normSplitter.Split(path); err == nil {
		return "/" + strings.Join(parts, "/")
	}
	return path
}

var normSplitter = splitter.MustCreateSplitter('/', splitter.CurlyBrackets).AddDefaultOptions(
	splitter.IgnoreEmptyFirst,
	splitter.IgnoreEmptyLast,
	&placeholderCapture{})

type placeholderCapture struct{}

func (pc *placeholderCapture) Apply(s string, pos int, totalLen int, captured int, skipped int, isLast bool, subParts ...splitter.SubPart) (cap string, add bool, err error) {
	add = true
	cap = s
	if (strings.HasPrefix(cap, "{") && strings.HasSuffix(cap, "}")) || (len(cap) > 1 && cap[0] == ':') {
		cap = "{}"
	}
	return
}
