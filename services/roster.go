package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is the immutable pledge roster: the set of canonical names plus
// an alias table. It is loaded once at startup and never mutated, so reads
// need no locking.
type Registry struct {
	canonical map[string]string // lowercased canonical -> canonical
	aliases   map[string]string // lowercased alias -> canonical
	names     []string          // canonical names, ascending
}

// NewRegistry builds a registry from canonical names and an alias map.
// Alias targets must be canonical names.
func NewRegistry(names []string, aliases map[string]string) (*Registry, error) {
	r := &Registry{
		canonical: make(map[string]string, len(names)),
		aliases:   make(map[string]string, len(aliases)),
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("roster contains an empty pledge name")
		}
		key := strings.ToLower(name)
		if _, exists := r.canonical[key]; exists {
			return nil, fmt.Errorf("duplicate pledge name: %s", name)
		}
		r.canonical[key] = name
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	for alias, target := range aliases {
		alias = strings.TrimSpace(alias)
		target = strings.TrimSpace(target)
		canonical, ok := r.canonical[strings.ToLower(target)]
		if !ok {
			return nil, fmt.Errorf("alias %q points to unknown pledge %q", alias, target)
		}
		if alias == "" {
			return nil, fmt.Errorf("empty alias for pledge %q", target)
		}
		r.aliases[strings.ToLower(alias)] = canonical
	}

	return r, nil
}

// Canonicalize resolves a raw name to its canonical roster name. Exact
// canonical matches win over aliases; both are case-insensitive.
func (r *Registry) Canonicalize(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := r.canonical[key]; ok {
		return canonical, true
	}
	if canonical, ok := r.aliases[key]; ok {
		return canonical, true
	}
	return "", false
}

// Names returns the canonical pledge names in ascending order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Aliases returns a copy of the alias table keyed by the stored
// (lowercased) alias.
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for alias, canonical := range r.aliases {
		out[alias] = canonical
	}
	return out
}

type rosterFile struct {
	Pledges []string          `yaml:"pledges"`
	Aliases map[string]string `yaml:"aliases"`
}

// LoadRosterFile reads a roster YAML file into a Registry.
func LoadRosterFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(file.Pledges) == 0 {
		return nil, fmt.Errorf("roster file %s lists no pledges", path)
	}

	return NewRegistry(file.Pledges, file.Aliases)
}

// Process-wide roster, set once at startup.
var roster *Registry

// InitRoster loads the roster file and installs it as the process roster.
func InitRoster(path string) error {
	r, err := LoadRosterFile(path)
	if err != nil {
		return err
	}
	roster = r
	return nil
}

// SetRoster installs a prebuilt registry. Used by tests and callers that
// construct the roster themselves.
func SetRoster(r *Registry) {
	roster = r
}

// Roster returns the process roster. Panics if InitRoster was never called;
// the roster is mandatory configuration.
func Roster() *Registry {
	if roster == nil {
		panic("services: roster not initialized")
	}
	return roster
}
