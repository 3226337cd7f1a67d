// Package locator maps domain-model names to the grouping segment used to
// build their canonical locator URIs.
//
// The set of models and groups is closed: each is a typed constant, so code
// that names a model at compile time cannot misspell it. A Registry is built
// once from Entries and never changes afterwards, which makes it safe to share
// between goroutines without locking.
//
// Example:
//
//	registry := locator.NewDefaultRegistry()
//	group, err := registry.Resolve("User")
//	// group = locator.Administration
//
// Lookups are case-sensitive and do no suffix stripping. An absent name fails
// with ErrUnknownModel.
package locator
