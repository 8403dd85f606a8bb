// Package registry keeps the fixture definitions of model types,
// and builds, saves and deletes fixtures from them.
package registry

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/reflects"
	"github.com/adamluzsi/muffin/stores"
)

func New(store stores.Store, opts ...Option) *Registry {
	r := &Registry{
		store:       store,
		logger:      logrus.StandardLogger(),
		definitions: make(map[string]*Definition),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type Registry struct {
	store  stores.Store
	logger logrus.FieldLogger

	mutex       sync.Mutex
	definitions map[string]*Definition
	saved       []interface{}
}

type Option func(*Registry)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) { r.logger = logger }
}

type grouped struct {
	group string
	model interface{}
}

// Group defines the model under a group, so the same type can have more than one definition.
// The group's definition is looked up by the "group:" prefixed name.
func Group(group string, model interface{}) interface{} {
	return grouped{group: group, model: model}
}

// Unwrap returns the model behind a Group, or the model itself.
func Unwrap(model interface{}) interface{} {
	if g, ok := model.(grouped); ok {
		return g.model
	}
	return model
}

// NameOf returns the registry name of a model.
// A string is taken as a registry name as is.
func NameOf(model interface{}) string {
	switch m := model.(type) {
	case string:
		return m
	case grouped:
		return m.group + ":" + reflects.FullyQualifiedName(m.model)
	default:
		return reflects.FullyQualifiedName(model)
	}
}

func (r *Registry) Define(model interface{}) (muffin.ModelDefinition, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := NameOf(model)
	if _, ok := r.definitions[name]; ok {
		return nil, &DefinitionAlreadyDefinedError{Name: name}
	}

	def := &Definition{name: name, modelType: reflects.BaseTypeOf(Unwrap(model))}
	r.definitions[name] = def
	r.logger.WithField("model", name).Debug("fixture definition registered")
	return def, nil
}

func (r *Registry) SetSaveMethod(name string) { r.store.SetSaveMethod(name) }

func (r *Registry) SetDeleteMethod(name string) { r.store.SetDeleteMethod(name) }

func (r *Registry) Definition(model interface{}) (*Definition, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := NameOf(model)
	def, ok := r.definitions[name]
	if !ok {
		return nil, &DefinitionNotFoundError{Name: name}
	}
	return def, nil
}

// Definitions returns the registered definition names.
func (r *Registry) Definitions() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	return names
}

// Instance builds a fixture without saving it.
// The given attrs override the defined rules.
func (r *Registry) Instance(ctx context.Context, model interface{}, attrs muffin.Rules) (interface{}, error) {
	def, err := r.Definition(model)
	if err != nil {
		return nil, err
	}

	ptr, err := build(def, attrs)
	if err != nil {
		return nil, err
	}

	if cb := def.Callback(); cb != nil {
		if err := cb(ctx, ptr, false); err != nil {
			return nil, err
		}
	}
	return ptr, nil
}

// Create builds a fixture and saves it with the store's save method.
// The callback runs after the fixture is saved.
func (r *Registry) Create(ctx context.Context, model interface{}, attrs muffin.Rules) (interface{}, error) {
	def, err := r.Definition(model)
	if err != nil {
		return nil, err
	}

	ptr, err := build(def, attrs)
	if err != nil {
		return nil, err
	}

	if err := r.store.Persist(ctx, ptr); err != nil {
		return nil, err
	}

	r.mutex.Lock()
	r.saved = append(r.saved, ptr)
	r.mutex.Unlock()
	r.logger.WithField("model", def.Name()).Debug("fixture created")

	if cb := def.Callback(); cb != nil {
		if err := cb(ctx, ptr, true); err != nil {
			return nil, err
		}
	}
	return ptr, nil
}

func (r *Registry) Seed(ctx context.Context, times int, model interface{}, attrs muffin.Rules) ([]interface{}, error) {
	seeds := make([]interface{}, 0, times)
	for i := 0; i < times; i++ {
		ptr, err := r.Create(ctx, model, attrs)
		if err != nil {
			return seeds, err
		}
		seeds = append(seeds, ptr)
	}
	return seeds, nil
}

func (r *Registry) IsSaved(fixture interface{}) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, saved := range r.saved {
		if saved == fixture {
			return true
		}
	}
	return false
}

// DeleteSaved deletes every saved fixture in reverse creation order with the store's delete method.
// Fixtures are forgotten even when their deletion fails.
func (r *Registry) DeleteSaved(ctx context.Context) error {
	r.mutex.Lock()
	saved := r.saved
	r.saved = nil
	r.mutex.Unlock()

	var errs []error
	for i := len(saved) - 1; 0 <= i; i-- {
		if err := r.store.Delete(ctx, saved[i]); err != nil {
			errs = append(errs, err)
			continue
		}
		r.logger.WithField("model", reflects.SymbolicName(saved[i])).Debug("fixture deleted")
	}

	if len(errs) != 0 {
		return &DeletingFailedError{Errors: errs}
	}
	return nil
}
