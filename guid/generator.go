package guid

import (
	"github.com/exertive/identity/byteorder"
	"github.com/google/uuid"
)

// Generator derives name-based identifiers. It holds no mutable state and is
// safe for concurrent use.
type Generator struct {
	// host is the byte order of the local layout produced by GenerateLocal.
	host byteorder.Order
}

// Option configures a Generator.
type Option func(*Generator)

// WithHostOrder sets the order used for local layouts instead of the
// machine's native order.
func WithHostOrder(order byteorder.Order) Option {
	return func(g *Generator) {
		g.host = order
	}
}

// NewGenerator creates a Generator for the native byte order unless an option
// overrides it.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{host: byteorder.Native()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// HostOrder returns the byte order of local layouts produced by g.
func (g *Generator) HostOrder() byteorder.Order {
	return g.host
}

// Generate derives the identifier for name within namespace.
// Returns ErrUnsupportedVersion if version is neither V3 nor V5.
func (g *Generator) Generate(namespace uuid.UUID, name string, version Version) (uuid.UUID, error) {
	l, err := derive(namespace, name, version)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(l.Bytes()), nil
}

// GenerateLocal derives the identifier for name within namespace and returns
// it in the generator's local layout, with the three time fields in host order.
func (g *Generator) GenerateLocal(namespace uuid.UUID, name string, version Version) ([Size]byte, error) {
	l, err := derive(namespace, name, version)
	if err != nil {
		return [Size]byte{}, err
	}
	return l.Local(g.host).Bytes(), nil
}

// derive runs the name-based algorithm and returns a network-order layout.
func derive(namespace uuid.UUID, name string, version Version) (Layout, error) {
	h, err := version.newHash()
	if err != nil {
		return Layout{}, err
	}

	// uuid.UUID already stores the namespace in network order.
	h.Write(namespace[:])
	h.Write([]byte(name))

	// MD5 yields exactly 16 bytes; SHA-1 yields 20 and is truncated.
	var candidate [Size]byte
	copy(candidate[:], h.Sum(nil))

	return Split(candidate).stamp(version), nil
}

// ToLocal returns the bytes of id with its time fields in the given order.
func ToLocal(id uuid.UUID, order byteorder.Order) [Size]byte {
	return Split(id).Local(order).Bytes()
}

// FromLocal rebuilds an identifier from bytes whose time fields are in the
// given order. FromLocal(ToLocal(id, o), o) == id for every order.
func FromLocal(b [Size]byte, order byteorder.Order) uuid.UUID {
	return uuid.UUID(Split(b).Canonical(order).Bytes())
}

var defaultGenerator = NewGenerator()

// Generate derives the identifier for name within namespace using a
// generator for the native byte order.
func Generate(namespace uuid.UUID, name string, version Version) (uuid.UUID, error) {
	return defaultGenerator.Generate(namespace, name, version)
}
