package byteorder

import (
	"encoding/binary"
	"slices"
)

// Order identifies how the bytes of a multi-byte numeric field are laid out.
type Order int

const (
	// BigEndian stores the most significant byte first.
	BigEndian Order = iota

	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// Network is the canonical order used when hashing identifiers.
const Network = BigEndian

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "unknown"
	}
}

// Native reports the byte order of the machine running the program.
func Native() Order {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// Convert returns a copy of b rearranged from one order to another.
// The bytes are reversed when the orders differ and copied unchanged otherwise.
// The input slice is never modified.
func Convert(b []byte, from, to Order) []byte {
	out := slices.Clone(b)
	if out == nil {
		out = []byte{}
	}
	if from != to {
		slices.Reverse(out)
	}
	return out
}

// ToNetwork converts a field held in the host order to network order.
func ToNetwork(b []byte, host Order) []byte {
	return Convert(b, host, Network)
}

// FromNetwork converts a field held in network order to the host order.
// It is the inverse of ToNetwork for the same host order.
func FromNetwork(b []byte, host Order) []byte {
	return Convert(b, Network, host)
}
