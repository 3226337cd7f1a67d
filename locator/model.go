package locator

import (
	"fmt"
	"sort"
)

// Model is a domain-model tag.
type Model int

// Known domain models.
const (
	Credentials Model = iota + 1
	Identity
	Role
	User
)

// Group is the grouping segment a model lives under.
type Group int

// Known groups.
const (
	Authentication Group = iota + 1
	Administration
)

var modelNames = map[Model]string{
	Credentials: "Credentials",
	Identity:    "Identity",
	Role:        "Role",
	User:        "User",
}

var groupNames = map[Group]string{
	Authentication: "Authentication",
	Administration: "Administration",
}

// String returns the canonical model name, e.g. "User".
func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// Valid reports whether m is one of the known models.
func (m Model) Valid() bool {
	_, ok := modelNames[m]
	return ok
}

// String returns the canonical group name, e.g. "Administration".
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Valid reports whether g is one of the known groups.
func (g Group) Valid() bool {
	_, ok := groupNames[g]
	return ok
}

// ParseModel returns the model with exactly the given name.
// Matching is case-sensitive.
func ParseModel(name string) (Model, error) {
	for m, n := range modelNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// ParseGroup returns the group with exactly the given name.
// Matching is case-sensitive.
func ParseGroup(name string) (Group, error) {
	for g, n := range groupNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Models returns every known model in declaration order.
func Models() []Model {
	models := make([]Model, 0, len(modelNames))
	for m := range modelNames {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
	return models
}
