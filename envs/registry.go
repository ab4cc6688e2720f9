// Package envs keeps the named-environment catalog. Registration is
// adapter bookkeeping the rules core knows nothing about: callers
// wanting make-by-ID construction import this package, everyone else
// builds env.New directly.
package envs

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"connectfour/env"
)

// Builder constructs the environment behind one catalog entry.
type Builder func(factory env.OpponentFactory, opts ...env.Option) (*env.Env, error)

// Entry is one catalog row: the public ID, the average reward a policy
// must reach for the environment to count as solved, and the builder.
type Entry struct {
	ID              string
	RewardThreshold float64
	Build           Builder
}

var (
	mu      sync.RWMutex
	catalog = map[string]Entry{}
)

// Register adds an entry to the catalog. Re-registering an ID is an
// error so two packages cannot silently fight over a name.
func Register(entry Entry) error {
	if entry.ID == "" {
		return errors.New("environment ID is required")
	}
	if entry.Build == nil {
		return errors.Errorf("environment %s has no builder", entry.ID)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := catalog[entry.ID]; exists {
		return errors.Errorf("environment %s is already registered", entry.ID)
	}
	catalog[entry.ID] = entry
	return nil
}

// Lookup returns the catalog entry registered under id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	entry, ok := catalog[id]
	return entry, ok
}

// Make builds the environment registered under id.
func Make(id string, factory env.OpponentFactory, opts ...env.Option) (*env.Env, error) {
	entry, ok := Lookup(id)
	if !ok {
		return nil, errors.Errorf("unknown environment %q", id)
	}
	return entry.Build(factory, opts...)
}

// IDs lists the registered environment names, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// The classic game under its customary ID. A policy that always beats
// the bundled opponents averages the threshold reward.
func init() {
	if err := Register(Entry{
		ID:              "Connect4-v0",
		RewardThreshold: 1.0,
		Build: func(factory env.OpponentFactory, opts ...env.Option) (*env.Env, error) {
			return env.New(factory, opts...)
		},
	}); err != nil {
		panic(err)
	}
}
