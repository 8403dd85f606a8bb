// Package loader loads the fixture definitions of model types into a fixture registry.
package loader

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/config"
	"github.com/adamluzsi/muffin/reflects"
	"github.com/adamluzsi/muffin/registry"
	"github.com/adamluzsi/muffin/stores"
)

type State int

const (
	// Unconfigured means no model definition was loaded yet.
	Unconfigured State = iota
	// Configured means at least one model is registered.
	Configured
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	default:
		return "unconfigured"
	}
}

type Loader struct {
	registry muffin.Registry
	table    *Table
	logger   logrus.FieldLogger
	config   config.Config
	state    State
}

type Option func(*Loader)

// WithRegistry replaces the default registry, which saves fixtures with their own save and delete methods.
func WithRegistry(r muffin.Registry) Option {
	return func(l *Loader) { l.registry = r }
}

func WithTable(t *Table) Option {
	return func(l *Loader) { l.table = t }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Loader) { l.logger = logger }
}

func WithConfig(cfg config.Config) Option {
	return func(l *Loader) { l.config = cfg }
}

// New configures the registry with the host ORM's save and delete method names,
// then loads the given models, if any.
func New(models []interface{}, opts ...Option) (*Loader, error) {
	l := &Loader{config: config.Default()}
	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		level, err := logrus.ParseLevel(l.config.LogLevel)
		if err != nil {
			return nil, err
		}
		logger := logrus.New()
		logger.SetLevel(level)
		l.logger = logger
	}
	if l.table == nil {
		l.table = NewTable()
	}
	if l.registry == nil {
		l.registry = registry.New(stores.NewMethodStore(), registry.WithLogger(l.logger))
	}

	l.registry.SetSaveMethod(l.config.SaveMethod)
	l.registry.SetDeleteMethod(l.config.DeleteMethod)

	if len(models) != 0 {
		if err := l.LoadModelDefinitions(models); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Loader) Registry() muffin.Registry { return l.registry }

func (l *Loader) State() State { return l.state }

// LoadModelDefinitions registers each model into the registry in the given order,
// and sets its rules and callback from its definitions.
// It stops at the first model that has no definitions, models before it stay registered.
func (l *Loader) LoadModelDefinitions(models []interface{}) error {
	if len(models) == 0 {
		return &muffin.ModelNotFoundError{
			Context: reflects.FullyQualifiedName(l),
			Message: "models should be passed as a list of model types",
		}
	}

	for _, model := range models {
		entry, ok := l.definitionsOf(model)
		if !ok {
			return &muffin.ModelError{
				Model:   modelName(model),
				Message: "could not find interface implementation: " + reflects.FullyQualifiedName((*muffin.FixtureDefiner)(nil)),
			}
		}

		def, err := l.registry.Define(entry.model)
		if err != nil {
			return err
		}
		l.state = Configured

		definitions := entry.definitions()
		rules, ok := definitions.Rules()
		if !ok {
			l.logger.WithField("model", modelName(entry.model)).Debug("model registered without rules")
			continue
		}

		def.SetDefinitions(rules)
		if callback, ok := definitions.Callback(); ok {
			if err := def.SetCallback(callback); err != nil {
				return err
			}
		}

		l.logger.WithFields(logrus.Fields{
			"model": modelName(entry.model),
			"rules": len(rules),
		}).Debug("model definitions loaded")
	}

	return nil
}

func (l *Loader) definitionsOf(model interface{}) (tableEntry, bool) {
	if model == nil {
		return tableEntry{}, false
	}

	if entry, ok := l.table.lookup(model); ok {
		return entry, true
	}

	if _, ok := model.(string); ok {
		return tableEntry{}, false
	}

	base := registry.Unwrap(model)
	if base == nil {
		return tableEntry{}, false
	}
	if reflect.TypeOf(base) != reflect.TypeOf(model) {
		if entry, ok := l.table.lookup(base); ok {
			return tableEntry{model: model, definitions: entry.definitions}, true
		}
	}

	// the pointer's method set includes the value receiver methods as well
	definer, ok := reflects.New(base).(muffin.FixtureDefiner)
	if !ok {
		return tableEntry{}, false
	}
	return tableEntry{model: model, definitions: definer.FixtureDefinitions}, true
}

func modelName(model interface{}) string {
	if registry.Unwrap(model) == nil {
		return "<nil>"
	}
	return registry.NameOf(model)
}
