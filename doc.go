// Package identity derives deterministic identity keys for domain resources.
//
// A key is a 128-bit RFC 4122 name-based identifier computed from a canonical
// locator URI. Unrelated components (caches, indexes, cross-service
// references) that derive a key for the same logical resource get the same
// value, with no shared sequence and no round-trip to storage.
//
// # Core Concepts
//
//   - Locator: the canonical URI of a model, e.g. https://index.exertive.io/administration/user
//   - Canonical name: the locator plus "/" plus the instance identifier
//   - Key: the version 5 (SHA-1) identifier of the canonical name in the URL namespace
//
// # Architecture
//
// The module is organized as small packages, leaves first:
//
//   - byteorder: pure byte-order conversion between network and host layouts
//   - guid: the name-based identifier generator (versions 3 and 5)
//   - locator: the fixed model-to-group table
//   - identification: locator construction, key derivation, configuration and telemetry
//
// This package ties them together behind functional options.
//
// # Getting Started
//
//	id, err := identity.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	key, err := id.Identify("UserEntity", "42")
//	// key = a7a29a0b-1cb5-5ddd-9689-c4b6d3c2b7b7
//
// Configuration may be loaded from YAML and telemetry attached:
//
//	id, err := identity.New(
//		identity.WithConfig("/etc/exertive/identity.yaml"),
//		identity.WithLogger(logger),
//		identity.WithTracer(tracer),
//	)
//
// # Errors
//
// Every failure is an *Error whose Kind is one of KindUnknownModel,
// KindUnsupportedVersion or KindConfiguration. The sentinel errors
// ErrUnknownModel, ErrUnsupportedVersion and ErrInvalidConfig work with
// errors.Is. Nothing is retried or defaulted: a masked error would silently
// produce a wrong key.
//
// # Thread Safety
//
// An Identifier holds only immutable configuration and may be shared by any
// number of goroutines without synchronization.
package identity
