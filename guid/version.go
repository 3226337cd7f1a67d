package guid

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"hash"
)

// Version selects the name-based hashing algorithm.
type Version int

const (
	// V3 hashes with MD5.
	V3 Version = 3

	// V5 hashes with SHA-1.
	V5 Version = 5
)

// String returns the version in "v<N>" form.
func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Valid reports whether v is one of the supported versions.
func (v Version) Valid() bool {
	return v == V3 || v == V5
}

// newHash returns a fresh digest for the version.
func (v Version) newHash() (hash.Hash, error) {
	switch v {
	case V3:
		return md5.New(), nil
	case V5:
		return sha1.New(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, int(v))
	}
}
