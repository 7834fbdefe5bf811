package coverage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-andiamo/chioas"
	"gopkg.in/yaml.v3"
	"io"
	"slices"
)

type Spec struct {
	CoveredPaths    map[string]*SpecPath
	NonCoveredPaths map[string]*SpecPath
	UnknownPaths    map[string]*SpecPath
}

type SpecPath struct {
	Path              string
	PathDef           *chioas.Path
	CoveredMethods    map[string]*SpecMethod
	NonCoveredMethods map[string]*SpecMethod
	UnknownMethods    map[string]*SpecMethod
}

type SpecMethod struct {
	Method    string
	MethodDef *chioas.Method
	Routes    []string
	Common
}

func (s *Spec) PathsCovered() (total int, covered int, perc float64) {
	covered = len(s.CoveredPaths)
	total = covered + len(s.NonCoveredPaths)
	if total > 0 {
		perc = float64(covered) / float64(total)
	}
	return
}

func (s *Spec) MethodsCovered() (total int, covered int, perc float64) {
	for _, cp := range s.CoveredPaths {
		total += len(cp.CoveredMethods) + len(cp.NonCoveredMethods)
		covered += len(cp.CoveredMethods)
	}
	for _, cp := range s.NonCoveredPaths {
		if cp.PathDef != nil {
			total += len(cp.PathDef.Methods)
		}
	}
	if total > 0 {
		perc = float64(covered) / float64(total)
	}
	return
}

func newSpecCoverage() *Spec {
	return &Spec{
		CoveredPaths:    make(map[string]*SpecPath),
		NonCoveredPaths: make(map[string]*SpecPath),
		UnknownPaths:    make(map[string]*SpecPath),
	}
}

func newSpecPathCoverage(path string, def *chioas.Path) *SpecPath {
	return &SpecPath{
		Path:              path,
		PathDef:           def,
		CoveredMethods:    make(map[string]*SpecMethod),
		NonCoveredMethods: make(map[string]*SpecMethod),
		UnknownMethods:    make(map[string]*SpecMethod),
	}
}

// LoadSpec reads an OpenAPI document (JSON or YAML)
func (c *Coverage) LoadSpec(r io.Reader) (err error) {
	br := bufio.NewReader(r)
	var spec *chioas.Definition
	var first []byte
	// sniff for json or yaml...
	if first, err = br.Peek(1); err == nil {
		spec = new(chioas.Definition)
		if first[0] == '{' {
			err = json.NewDecoder(br).Decode(spec)
		} else {
			err = yaml.NewDecoder(br).Decode(spec)
		}
	}
	if err != nil {
		return fmt.Errorf("unable to read OAS: %w", err)
	}
	c.mutex.Lock()
	c.OAS = spec
	c.mutex.Unlock()
	return nil
}

// SpecCoverage compares the reported routes against the loaded OpenAPI document
//
// paths are compared with their path variable names ignored (so "/posts/{id}" covers "/posts/{postId}")
func (c *Coverage) SpecCoverage() (*Spec, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	const root = "/"
	if c.OAS == nil {
		return nil, errors.New("spec not supplied")
	}
	result := newSpecCoverage()
	seenPaths := make(map[string]struct{})
	seenPath := func(tPaths map[string]struct{}) {
		for tPath := range tPaths {
			seenPaths[tPath] = struct{}{}
		}
	}
	if len(c.OAS.Methods) > 0 {
		rootCov := newSpecPathCoverage(root, nil)
		if tPaths, ok := c.normalizedPaths[root]; ok {
			seenPath(tPaths)
			result.CoveredPaths[root] = rootCov
			c.checkMethodCoverage(rootCov, c.OAS.Methods, tPaths)
		} else {
			result.NonCoveredPaths[root] = rootCov
		}
	}
	_ = c.OAS.WalkPaths(func(path string, pathDef *chioas.Path) (cont bool, err error) {
		if len(pathDef.Methods) > 0 {
			pathCov := newSpecPathCoverage(path, pathDef)
			if tPaths, ok := c.normalizedPaths[normalizePath(path)]; ok {
				seenPath(tPaths)
				result.CoveredPaths[path] = pathCov
				c.checkMethodCoverage(pathCov, pathDef.Methods, tPaths)
			} else {
				result.NonCoveredPaths[path] = pathCov
			}
		}
		return true, nil
	})
	for p, ce := range c.Endpoints {
		if _, ok := seenPaths[p]; !ok {
			pathCov := newSpecPathCoverage(p, nil)
			result.UnknownPaths[p] = pathCov
			for m, cm := range ce.Methods {
				pathCov.UnknownMethods[m] = newSpecMethod(m, nil, cm)
			}
		}
	}
	return result, nil
}

func newSpecMethod(m string, def *chioas.Method, cm *Method) *SpecMethod {
	result := &SpecMethod{
		Method:    m,
		MethodDef: def,
	}
	if cm != nil {
		result.merge(cm)
	}
	return result
}

func (sm *SpecMethod) merge(cm *Method) {
	for _, name := range cm.Routes {
		if !slices.Contains(sm.Routes, name) {
			sm.Routes = append(sm.Routes, name)
		}
	}
	sm.Failures = append(sm.Failures, cm.Failures...)
	sm.Timings = append(sm.Timings, cm.Timings...)
}

func (c *Coverage) checkMethodCoverage(pathCov *SpecPath, methods chioas.Methods, tPaths map[string]struct{}) {
	for m, mDef := range methods {
		mCov := newSpecMethod(m, &mDef, nil)
		found := false
		for tPath := range tPaths {
			if cc, ok := c.Endpoints[tPath]; ok {
				if cm, ok := cc.Methods[m]; ok {
					found = true
					mCov.merge(cm)
				}
			}
		}
		if found {
			pathCov.CoveredMethods[m] = mCov
		} else {
			pathCov.NonCoveredMethods[m] = mCov
		}
	}
	for tPath := range tPaths {
		if cc, ok := c.Endpoints[tPath]; ok {
			for m, cm := range cc.Methods {
				if _, ok := methods[m]; !ok {
					if um, ok := pathCov.UnknownMethods[m]; ok {
						um.merge(cm)
					} else {
						pathCov.UnknownMethods[m] = newSpecMethod(m, nil, cm)
					}
				}
			}
		}
	}
}
