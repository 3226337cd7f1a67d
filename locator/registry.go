package locator

import (
	"fmt"
	"sort"
)

// Entry pairs a model with the group it is located under.
type Entry struct {
	Model Model
	Group Group
}

// Registry is a fixed model-to-group table. The zero value is an empty
// registry; use NewRegistry or NewDefaultRegistry to build a populated one.
// A Registry is never modified after construction and needs no locking.
type Registry struct {
	byModel map[Model]Group
	byName  map[string]Group
}

// DefaultEntries returns the built-in locator table:
//   - Credentials, Identity, Role: Authentication
//   - User: Administration
func DefaultEntries() []Entry {
	return []Entry{
		{Model: Credentials, Group: Authentication},
		{Model: Identity, Group: Authentication},
		{Model: Role, Group: Authentication},
		{Model: User, Group: Administration},
	}
}

// NewDefaultRegistry builds a registry from DefaultEntries.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEntries())
	if err != nil {
		// DefaultEntries is a constant table.
		panic(err)
	}
	return r
}

// NewRegistry builds a registry from entries.
// Returns ErrUnknownModel or ErrUnknownGroup for tags outside the known sets
// and ErrDuplicateEntry if a model appears more than once.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		byModel: make(map[Model]Group, len(entries)),
		byName:  make(map[string]Group, len(entries)),
	}

	for _, e := range entries {
		if !e.Model.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownModel, e.Model)
		}
		if !e.Group.Valid() {
			return nil, fmt.Errorf("%w: %s for model %s", ErrUnknownGroup, e.Group, e.Model)
		}
		if _, ok := r.byModel[e.Model]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Model)
		}
		r.byModel[e.Model] = e.Group
		r.byName[e.Model.String()] = e.Group
	}

	return r, nil
}

// Resolve returns the group for a bare model name such as "User".
// The name is matched case-sensitively and is not stripped of any suffix.
func (r *Registry) Resolve(modelName string) (Group, error) {
	if g, ok := r.byName[modelName]; ok {
		return g, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, modelName)
}

// ResolveModel returns the group for a model tag.
func (r *Registry) ResolveModel(m Model) (Group, error) {
	if g, ok := r.byModel[m]; ok {
		return g, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownModel, m)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.byModel)
}

// Entries returns a copy of the table ordered by model.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.byModel))
	for m, g := range r.byModel {
		entries = append(entries, Entry{Model: m, Group: g})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Model < entries[j].Model })
	return entries
}
