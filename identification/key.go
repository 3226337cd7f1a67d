package identification

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Key is an identity key as stored by the entity layer. It is opaque apart
// from its encoding: JSON writes the nil key as null and any other key as its
// canonical hyphenated string.
type Key uuid.UUID

// NilKey is the empty key.
var NilKey Key

// ParseKey parses the textual form of a key. An empty string yields NilKey.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return NilKey, nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return NilKey, fmt.Errorf("parse key %q: %w", s, err)
	}
	return Key(u), nil
}

// UUID returns the key as a uuid.UUID.
func (k Key) UUID() uuid.UUID {
	return uuid.UUID(k)
}

// IsNil reports whether k is the empty key.
func (k Key) IsNil() bool {
	return k == NilKey
}

// String returns the canonical hyphenated form.
func (k Key) String() string {
	return uuid.UUID(k).String()
}

// MarshalJSON implements json.Marshaler.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to NilKey.
func (k *Key) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*k = NilKey
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	parsed, err := ParseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Key derives the identity key for typeName and id as a Key.
func (s *Service) Key(typeName, id string) (Key, error) {
	u, err := s.Identify(typeName, id)
	if err != nil {
		return NilKey, err
	}
	return Key(u), nil
}
