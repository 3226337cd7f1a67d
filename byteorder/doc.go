// Package byteorder converts multi-byte field groups between network byte order
// and a host's local byte order.
//
// Every conversion is an explicit, pure function of the bytes and the orders
// involved. Nothing in this package consults the running machine unless the
// caller asks for Native, so both directions can be exercised on any host.
//
// # Usage
//
//	field := []byte{0x6b, 0xa7, 0xb8, 0x11}
//	local := byteorder.FromNetwork(field, byteorder.LittleEndian)
//	// local = [0x11 0xb8 0xa7 0x6b]
//	back := byteorder.ToNetwork(local, byteorder.LittleEndian)
//	// back = [0x6b 0xa7 0xb8 0x11]
package byteorder
