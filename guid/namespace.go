package guid

import "github.com/google/uuid"

// Well-known namespace identifiers from RFC 4122, Appendix C.
// They are fixed for the life of the process and are held in network order.
var (
	NamespaceDNS  = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = uuid.MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)
