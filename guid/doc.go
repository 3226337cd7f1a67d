// Package guid derives deterministic, name-based 128-bit identifiers.
//
// Identifiers follow RFC 4122 versions 3 (MD5) and 5 (SHA-1): a namespace
// identifier and a name are hashed together, the first 16 bytes of the digest
// become the identifier, and the version and variant bits are overwritten.
//
// # Determinism Guarantees
//
// The generator guarantees:
//   - Same namespace, name and version always produce the same identifier
//   - Output is independent of the host's byte order
//   - Names are hashed as raw UTF-8: case and whitespace are significant
//
// Uniqueness is inherited from the hash function. Nothing here adds to it.
//
// # Field Layout
//
// A Layout splits the 16 bytes into the six RFC 4122 field groups. Only the
// first three groups (time_low, time_mid, time_hi_and_version) are numeric,
// so only they are subject to byte-order conversion when moving between the
// canonical network layout and a host's local layout:
//
//	time_low(4) time_mid(2) time_hi_and_version(2) clock_seq_hi_and_reserved(1) clock_seq_low(1) node(6)
//
// # Usage
//
//	key, err := guid.Generate(guid.NamespaceURL, "http://schema.exertive.io/test", guid.V5)
//	// key = c367d8f4-4e7d-5e2f-9682-f69afd71d664
//
// An unsupported version fails with ErrUnsupportedVersion rather than
// defaulting to another algorithm.
package guid
