package coverage

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Write writes a plain text coverage report
func (s *Spec) Write(w io.Writer) (err error) {
	total, covered, perc := s.PathsCovered()
	mTotal, mCovered, mPerc := s.MethodsCovered()
	if _, err = fmt.Fprintf(w, "paths covered: %d/%d (%.1f%%)\nmethods covered: %d/%d (%.1f%%)\n", covered, total, perc*100, mCovered, mTotal, mPerc*100); err != nil {
		return err
	}
	sections := []struct {
		title string
		paths map[string]*SpecPath
	}{
		{"covered", s.CoveredPaths},
		{"not covered", s.NonCoveredPaths},
		{"unknown to spec", s.UnknownPaths},
	}
	for _, section := range sections {
		if len(section.paths) == 0 {
			continue
		}
		if _, err = fmt.Fprintf(w, "\n%s:\n", section.title); err != nil {
			return err
		}
		for _, p := range slices.Sorted(maps.Keys(section.paths)) {
			sp := section.paths[p]
			if _, err = fmt.Fprintf(w, "  %s\n", p); err != nil {
				return err
			}
			if err = writeMethods(w, "+", sp.CoveredMethods); err == nil {
				if err = writeMethods(w, "-", sp.NonCoveredMethods); err == nil {
					err = writeMethods(w, "?", sp.UnknownMethods)
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMethods(w io.Writer, marker string, methods map[string]*SpecMethod) error {
	for _, m := range slices.Sorted(maps.Keys(methods)) {
		line := fmt.Sprintf("    %s %s", marker, m)
		if routes := methods[m].Routes; len(routes) > 0 {
			line += " [" + strings.Join(routes, ", ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
