package guid

import "errors"

// ErrUnsupportedVersion indicates a hash version other than V3 or V5 was requested.
// This is a programming or configuration error and is never silently corrected.
//
// Example:
//
//	_, err := guid.Generate(guid.NamespaceURL, name, 4)
//	if errors.Is(err, guid.ErrUnsupportedVersion) {
//	    // fix the caller
//	}
var ErrUnsupportedVersion = errors.New("unsupported uuid version")
