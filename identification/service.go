package identification

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/exertive/identity/guid"
	"github.com/exertive/identity/locator"
	"github.com/google/uuid"
)

// EntitySuffix is the trailing token stripped from type names by LocateType.
const EntitySuffix = "Entity"

// KeyVersion is the hash version used for identity keys.
const KeyVersion = guid.V5

// Modeler is implemented by domain types that know which model they belong to.
type Modeler interface {
	Model() locator.Model
}

// Service locates domain models and derives their identity keys.
// It holds only immutable configuration and is safe for concurrent use.
type Service struct {
	base      string
	registry  *locator.Registry
	generator *guid.Generator
	namespace uuid.UUID
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGenerator sets the identifier generator.
func WithGenerator(g *guid.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// NewService builds a Service from cfg and registry. The registry is used as
// given; cfg.Locators is ignored here (see Config.Registry).
func NewService(cfg Config, registry *locator.Registry, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, fmt.Errorf("%w: nil locator registry", ErrInvalidConfig)
	}

	s := &Service{
		base:      cfg.Scheme + cfg.Authority,
		registry:  registry,
		generator: guid.NewGenerator(),
		namespace: guid.NamespaceURL,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewDefaultService builds a Service from DefaultConfig and the built-in
// locator table.
func NewDefaultService(opts ...Option) *Service {
	s, err := NewService(DefaultConfig(), locator.NewDefaultRegistry(), opts...)
	if err != nil {
		// DefaultConfig is a constant.
		panic(err)
	}
	return s
}

// Base returns the scheme and authority every locator starts with.
func (s *Service) Base() string {
	return s.base
}

// Registry returns the locator registry.
func (s *Service) Registry() *locator.Registry {
	return s.registry
}

// LocateType returns the canonical locator for a type name, stripping one
// trailing "Entity" token first: "UserEntity" and "User" both locate to
// https://index.exertive.io/administration/user.
func (s *Service) LocateType(typeName string) (string, error) {
	return s.Locate(strings.TrimSuffix(typeName, EntitySuffix))
}

// Locate returns the canonical locator for a bare model name.
// Returns locator.ErrUnknownModel if the registry does not contain it.
func (s *Service) Locate(modelName string) (string, error) {
	group, err := s.registry.Resolve(modelName)
	if err != nil {
		s.logger.Warn("cannot locate model",
			"component", "identification",
			"model", modelName,
			"error", err)
		return "", err
	}
	return s.build(group, modelName), nil
}

// LocateModel returns the canonical locator for a model tag.
func (s *Service) LocateModel(m locator.Model) (string, error) {
	group, err := s.registry.ResolveModel(m)
	if err != nil {
		s.logger.Warn("cannot locate model",
			"component", "identification",
			"model", m.String(),
			"error", err)
		return "", err
	}
	return s.build(group, m.String()), nil
}

// Name returns the canonical name hashed for typeName and id:
// LocateType(typeName) + "/" + id. The id is used verbatim.
func (s *Service) Name(typeName, id string) (string, error) {
	loc, err := s.LocateType(typeName)
	if err != nil {
		return "", err
	}
	return loc + "/" + id, nil
}

// Identify derives the identity key for an instance of a model or entity type.
func (s *Service) Identify(typeName, id string) (uuid.UUID, error) {
	name, err := s.Name(typeName, id)
	if err != nil {
		return uuid.Nil, err
	}
	return s.derive(name)
}

// IdentifyModel derives the identity key for an instance of a model tag.
func (s *Service) IdentifyModel(m locator.Model, id string) (uuid.UUID, error) {
	loc, err := s.LocateModel(m)
	if err != nil {
		return uuid.Nil, err
	}
	return s.derive(loc + "/" + id)
}

// IdentifyOf derives the identity key for an instance of v's model.
// A nil v, including a nil pointer held in the interface, is an unknown model.
func (s *Service) IdentifyOf(v Modeler, id string) (uuid.UUID, error) {
	if isNilModeler(v) {
		return uuid.Nil, fmt.Errorf("%w: nil modeler", locator.ErrUnknownModel)
	}
	return s.IdentifyModel(v.Model(), id)
}

func isNilModeler(v Modeler) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (s *Service) build(group locator.Group, model string) string {
	return s.base + "/" + strings.ToLower(group.String()) + "/" + strings.ToLower(model)
}

func (s *Service) derive(name string) (uuid.UUID, error) {
	key, err := s.generator.Generate(s.namespace, name, KeyVersion)
	if err != nil {
		return uuid.Nil, err
	}
	s.logger.Debug("derived identity key",
		"component", "identification",
		"name", name,
		"key", key.String())
	return key, nil
}

// errorKind classifies an identification failure for logs and telemetry.
func errorKind(err error) string {
	switch {
	case errors.Is(err, locator.ErrUnknownModel):
		return "unknown_model"
	case errors.Is(err, guid.ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, ErrInvalidConfig):
		return "configuration"
	default:
		return "internal"
	}
}
