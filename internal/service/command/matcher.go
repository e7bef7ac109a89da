package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// Match returns the first registered phrase, in registry order, contained in
// the lowercased line. Containment rather than prefix matching means an
// earlier phrase wins whenever a line holds several, e.g. "more user info
// --mango" matches "man".
func (r *Registry) Match(line string) (string, error) {
	lower := strings.ToLower(line)
	for _, spec := range r.specs {
		if strings.Contains(lower, spec.Phrase) {
			return spec.Phrase, nil
		}
	}
	return "", core.ErrUnrecognizedCommand
}

// Closest returns the registered phrase with the smallest edit distance to
// line. Used only for diagnostics on unrecognized input.
func (r *Registry) Closest(line string) (string, int) {
	lower := strings.ToLower(line)
	best, bestDist := "", -1
	for _, spec := range r.specs {
		d := levenshtein.ComputeDistance(lower, spec.Phrase)
		if bestDist < 0 || d < bestDist {
			best, bestDist = spec.Phrase, d
		}
	}
	return best, bestDist
}
