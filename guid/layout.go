package guid

import (
	"github.com/exertive/identity/byteorder"
)

// Size is the length of an identifier in bytes.
const Size = 16

// Layout is an identifier decomposed into its six RFC 4122 field groups.
// It is a plain value: every transformation returns a new Layout.
type Layout struct {
	TimeLow               [4]byte
	TimeMid               [2]byte
	TimeHiAndVersion      [2]byte
	ClockSeqHiAndReserved byte
	ClockSeqLow           byte
	Node                  [6]byte
}

// Split decomposes 16 bytes into their field groups without reordering.
func Split(b [Size]byte) Layout {
	var l Layout
	copy(l.TimeLow[:], b[0:4])
	copy(l.TimeMid[:], b[4:6])
	copy(l.TimeHiAndVersion[:], b[6:8])
	l.ClockSeqHiAndReserved = b[8]
	l.ClockSeqLow = b[9]
	copy(l.Node[:], b[10:16])
	return l
}

// Bytes concatenates the field groups in order.
func (l Layout) Bytes() [Size]byte {
	var b [Size]byte
	n := copy(b[0:], l.TimeLow[:])
	n += copy(b[n:], l.TimeMid[:])
	n += copy(b[n:], l.TimeHiAndVersion[:])
	b[n] = l.ClockSeqHiAndReserved
	b[n+1] = l.ClockSeqLow
	copy(b[n+2:], l.Node[:])
	return b
}

// Canonical returns the layout with its time fields moved from the given
// host order into network order. The clock sequence and node are untouched.
func (l Layout) Canonical(from byteorder.Order) Layout {
	copy(l.TimeLow[:], byteorder.ToNetwork(l.TimeLow[:], from))
	copy(l.TimeMid[:], byteorder.ToNetwork(l.TimeMid[:], from))
	copy(l.TimeHiAndVersion[:], byteorder.ToNetwork(l.TimeHiAndVersion[:], from))
	return l
}

// Local returns the layout with its time fields moved from network order
// into the given host order. It is the inverse of Canonical.
func (l Layout) Local(to byteorder.Order) Layout {
	copy(l.TimeLow[:], byteorder.FromNetwork(l.TimeLow[:], to))
	copy(l.TimeMid[:], byteorder.FromNetwork(l.TimeMid[:], to))
	copy(l.TimeHiAndVersion[:], byteorder.FromNetwork(l.TimeHiAndVersion[:], to))
	return l
}

// Version returns the version nibble of a network-order layout.
func (l Layout) Version() Version {
	return Version(l.TimeHiAndVersion[0] >> 4)
}

// Variant returns the two most significant bits of clock_seq_hi_and_reserved.
func (l Layout) Variant() byte {
	return l.ClockSeqHiAndReserved >> 6
}

// stamp overwrites the version nibble and sets the RFC 4122 variant (binary 10).
// The layout must be in network order.
func (l Layout) stamp(v Version) Layout {
	l.TimeHiAndVersion[0] = l.TimeHiAndVersion[0]&0x0f | byte(v)<<4
	l.ClockSeqHiAndReserved = l.ClockSeqHiAndReserved&0x3f | 0x80
	return l
}
