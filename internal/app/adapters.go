// internal/app/adapters.go
package app

import (
	"fmt"
	"strings"

	"adaptrim-core/adapter"
	"adaptrim/internal/cli"
)

// buildAdapters converts the CLI adapter specs for one read into adapter
// values: front specs become 5' adapters, back specs become 3' adapters or,
// with the FRONT...BACK syntax, linked adapters.
func buildAdapters(front, back []string, opts cli.Options) ([]adapter.Adapter, error) {
	ads := make([]adapter.Adapter, 0, len(front)+len(back))
	for _, spec := range front {
		name, sequence := splitName(spec)
		a, err := adapter.NewPrefix(makeConfig(name, sequence, opts))
		if err != nil {
			return nil, fmt.Errorf("adapter %q: %w", spec, err)
		}
		ads = append(ads, a)
	}
	for _, spec := range back {
		name, sequence := splitName(spec)
		if f, b, linked := strings.Cut(sequence, "..."); linked {
			a, err := buildLinked(name, f, b, opts)
			if err != nil {
				return nil, fmt.Errorf("adapter %q: %w", spec, err)
			}
			ads = append(ads, a)
			continue
		}
		a, err := adapter.NewBack(makeConfig(name, sequence, opts))
		if err != nil {
			return nil, fmt.Errorf("adapter %q: %w", spec, err)
		}
		ads = append(ads, a)
	}
	return ads, nil
}

// buildLinked assembles a FRONT...BACK linked adapter. The front side must
// be found for the back side to be searched; a missing back side still
// counts as a match.
func buildLinked(name, front, back string, opts cli.Options) (adapter.Adapter, error) {
	if front == "" || back == "" {
		return nil, fmt.Errorf("linked adapter needs sequences on both sides of '...'")
	}
	f, err := adapter.NewPrefix(makeConfig("", front, opts))
	if err != nil {
		return nil, err
	}
	b, err := adapter.NewBack(makeConfig("", back, opts))
	if err != nil {
		return nil, err
	}
	a, err := adapter.NewLinked(f, b, true, false)
	if err != nil {
		return nil, err
	}
	if name != "" {
		return namedAdapter{Adapter: a, name: name}, nil
	}
	return a, nil
}

// splitName handles the NAME=SEQUENCE spec form.
func splitName(spec string) (name, sequence string) {
	if n, s, ok := strings.Cut(spec, "="); ok {
		return n, s
	}
	return "", spec
}

func makeConfig(name, sequence string, opts cli.Options) adapter.Config {
	cfg := adapter.DefaultConfig(sequence)
	if name != "" {
		cfg.Name = name
	}
	cfg.MaxErrorRate = opts.ErrorRate
	cfg.MinOverlap = opts.MinOverlap
	cfg.Indels = !opts.NoIndels
	return cfg
}

// namedAdapter overrides the reported name of a wrapped adapter.
type namedAdapter struct {
	adapter.Adapter
	name string
}

func (n namedAdapter) Name() string { return n.name }
