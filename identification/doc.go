// Package identification produces identity keys for domain objects.
//
// A key is derived in two steps. First the model is located: its grouping
// segment is resolved through a locator.Registry and a canonical URI is built
//
//	<scheme><authority>/<group>/<model>
//
// with group and model lowercased, e.g. https://index.exertive.io/administration/user.
// Then the instance identifier is appended and the resulting name is hashed
// with guid.V5 in the RFC 4122 URL namespace:
//
//	svc := identification.NewDefaultService()
//	key, err := svc.Identify("UserEntity", "42")
//	// key = a7a29a0b-1cb5-5ddd-9689-c4b6d3c2b7b7
//
// Type names may carry a trailing "Entity" suffix, which LocateType strips.
// Code that knows its model at compile time should prefer LocateModel,
// IdentifyModel or IdentifyOf, which take a locator.Model tag and skip string
// parsing altogether.
//
// # Configuration
//
// Scheme, authority and the locator table come from Config. DefaultConfig
// returns the built-in values; LoadConfig reads them from YAML:
//
//	scheme: "https://"
//	authority: index.exertive.io
//	locators:
//	  Credentials: Authentication
//	  Identity: Authentication
//	  Role: Authentication
//	  User: Administration
//
// A Service is immutable once built and safe for concurrent use.
//
// # Observability
//
// Instrument wraps a Service with OpenTelemetry tracing and metrics. The
// wrapper records a span per key and counts successes and failures; it never
// changes the keys produced.
package identification
