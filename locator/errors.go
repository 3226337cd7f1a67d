package locator

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrUnknownModel indicates the model name is not in the registry.
	//
	// Example:
	//	_, err := registry.Resolve("UnknownThing")
	//	if errors.Is(err, locator.ErrUnknownModel) {
	//	    // the caller asked for a model nobody registered
	//	}
	ErrUnknownModel = errors.New("unknown model")

	// ErrUnknownGroup indicates a grouping segment outside the known set.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrDuplicateEntry indicates the same model was listed twice when building a registry.
	ErrDuplicateEntry = errors.New("duplicate locator entry")
)
