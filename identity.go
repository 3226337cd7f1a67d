package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exertive/identity/guid"
	"github.com/exertive/identity/identification"
	"github.com/exertive/identity/locator"
	"github.com/google/uuid"
)

// Identifier is the entry point for deriving identity keys.
type Identifier struct {
	svc          *identification.Service
	instrumented *identification.Instrumented
	generator    *guid.Generator
}

// New creates an Identifier. Without options it uses the built-in scheme,
// authority and locator table.
//
// Example:
//
//	id, err := identity.New(
//	    identity.WithLogger(logger),
//	    identity.WithConfig("/path/to/identity.yaml"),
//	)
func New(opts ...Option) (*Identifier, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	cfg := identification.DefaultConfig()
	switch {
	case o.configPath != "":
		loaded, err := identification.LoadConfig(o.configPath)
		if err != nil {
			return nil, wrap("identity.New", err)
		}
		cfg = loaded
	case o.config != nil:
		cfg = *o.config
	}

	registry := o.registry
	if registry == nil {
		r, err := cfg.Registry()
		if err != nil {
			return nil, wrap("identity.New", err)
		}
		registry = r
	}

	var genOpts []guid.Option
	if o.hostOrder != nil {
		genOpts = append(genOpts, guid.WithHostOrder(*o.hostOrder))
	}
	generator := guid.NewGenerator(genOpts...)

	svc, err := identification.NewService(cfg, registry,
		identification.WithLogger(o.logger),
		identification.WithGenerator(generator),
	)
	if err != nil {
		return nil, wrap("identity.New", err)
	}

	instrumented, err := identification.Instrument(svc, identification.InstrumentOptions{
		Tracer:        o.tracer,
		MeterProvider: o.meterProvider,
	})
	if err != nil {
		return nil, wrap("identity.New", err)
	}

	o.logger.Debug("identifier ready",
		"component", "identity",
		"base", svc.Base(),
		"models", registry.Len(),
		"host_order", generator.HostOrder().String())

	return &Identifier{svc: svc, instrumented: instrumented, generator: generator}, nil
}

// Service returns the underlying identification service.
func (i *Identifier) Service() *identification.Service {
	return i.svc
}

// LocateType returns the canonical locator for a model or entity type name.
func (i *Identifier) LocateType(typeName string) (string, error) {
	loc, err := i.svc.LocateType(typeName)
	return loc, wrap("Identifier.LocateType", err)
}

// Identify derives the identity key for an instance of a model or entity type.
func (i *Identifier) Identify(typeName, id string) (uuid.UUID, error) {
	key, err := i.svc.Identify(typeName, id)
	if err != nil {
		return uuid.Nil, i.fail("Identifier.Identify", err, typeName, id)
	}
	return key, nil
}

// IdentifyContext is Identify with tracing and metrics when configured.
func (i *Identifier) IdentifyContext(ctx context.Context, typeName, id string) (uuid.UUID, error) {
	key, err := i.instrumented.Identify(ctx, typeName, id)
	if err != nil {
		return uuid.Nil, i.fail("Identifier.IdentifyContext", err, typeName, id)
	}
	return key, nil
}

// IdentifyModel derives the identity key for an instance of a model tag.
func (i *Identifier) IdentifyModel(m locator.Model, id string) (uuid.UUID, error) {
	key, err := i.svc.IdentifyModel(m, id)
	if err != nil {
		return uuid.Nil, i.fail("Identifier.IdentifyModel", err, m.String(), id)
	}
	return key, nil
}

// IdentifyOf derives the identity key for an instance of v's model.
func (i *Identifier) IdentifyOf(v identification.Modeler, id string) (uuid.UUID, error) {
	key, err := i.svc.IdentifyOf(v, id)
	if err != nil {
		model := ""
		if v != nil {
			model = fmt.Sprintf("%T", v)
		}
		return uuid.Nil, i.fail("Identifier.IdentifyOf", err, model, id)
	}
	return key, nil
}

// Key derives the identity key for typeName and id in its storable form.
func (i *Identifier) Key(typeName, id string) (identification.Key, error) {
	key, err := i.Identify(typeName, id)
	if err != nil {
		return identification.NilKey, err
	}
	return identification.Key(key), nil
}

// Generate derives a name-based identifier for an arbitrary name in the URL
// namespace.
func (i *Identifier) Generate(name string, version guid.Version) (uuid.UUID, error) {
	key, err := i.generator.Generate(guid.NamespaceURL, name, version)
	if err != nil {
		return uuid.Nil, wrap("Identifier.Generate", err)
	}
	return key, nil
}

// GenerateLocal is Generate returning the bytes in the local layout, with the
// time fields in the host byte order chosen by WithHostOrder.
func (i *Identifier) GenerateLocal(name string, version guid.Version) ([guid.Size]byte, error) {
	b, err := i.generator.GenerateLocal(guid.NamespaceURL, name, version)
	if err != nil {
		return [guid.Size]byte{}, wrap("Identifier.GenerateLocal", err)
	}
	return b, nil
}

func (i *Identifier) fail(op string, err error, typeName, id string) error {
	e := &Error{Op: op, Kind: kindOf(err), Err: err}
	return e.WithContext(map[string]any{"type": typeName, "id": id})
}
