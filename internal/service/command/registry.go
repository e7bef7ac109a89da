package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

var ErrInvalidRegistry = errors.New("invalid command registry")

// Registry is the ordered, immutable list of recognized commands. Order is
// significant: matching walks it front to back.
type Registry struct {
	specs []core.CommandSpec
}

func NewRegistry(specs ...core.CommandSpec) (*Registry, error) {
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if spec.Phrase == "" || spec.Phrase != strings.ToLower(spec.Phrase) {
			return nil, fmt.Errorf("%w: phrase %q must be non-empty lowercase", ErrInvalidRegistry, spec.Phrase)
		}
		if seen[spec.Phrase] {
			return nil, fmt.Errorf("%w: duplicate phrase %q", ErrInvalidRegistry, spec.Phrase)
		}
		if spec.Handler == nil {
			return nil, fmt.Errorf("%w: phrase %q has no handler", ErrInvalidRegistry, spec.Phrase)
		}
		seen[spec.Phrase] = true
	}

	specs = append([]core.CommandSpec(nil), specs...)
	return &Registry{specs: specs}, nil
}

// Specs returns a copy of the registered commands in registry order.
func (r *Registry) Specs() []core.CommandSpec {
	return append([]core.CommandSpec(nil), r.specs...)
}

func (r *Registry) Phrases() []string {
	phrases := make([]string, len(r.specs))
	for i, spec := range r.specs {
		phrases[i] = spec.Phrase
	}
	return phrases
}
