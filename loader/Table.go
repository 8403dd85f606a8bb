package loader

import (
	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/registry"
)

// DefinitionsFunc produces the definition pair of a model.
type DefinitionsFunc func() muffin.Definitions

// Table registers definitions for model types explicitly,
// for types that can't implement muffin.FixtureDefiner, such as types of a third party package.
// A Table entry takes precedence over the type's own FixtureDefinitions.
type Table struct {
	byType map[string]tableEntry
	byName map[string]tableEntry
}

type tableEntry struct {
	model       interface{}
	definitions DefinitionsFunc
}

func NewTable() *Table {
	return &Table{
		byType: make(map[string]tableEntry),
		byName: make(map[string]tableEntry),
	}
}

// Register sets the definitions of the model's type.
func (t *Table) Register(model interface{}, fn DefinitionsFunc) *Table {
	t.byType[registry.NameOf(model)] = tableEntry{model: model, definitions: fn}
	return t
}

// RegisterAs sets the definitions of the model's type and makes it loadable by name.
func (t *Table) RegisterAs(name string, model interface{}, fn DefinitionsFunc) *Table {
	t.Register(model, fn)
	t.byName[name] = tableEntry{model: model, definitions: fn}
	return t
}

func (t *Table) lookup(model interface{}) (tableEntry, bool) {
	if name, ok := model.(string); ok {
		e, ok := t.byName[name]
		return e, ok
	}
	e, ok := t.byType[registry.NameOf(model)]
	return e, ok
}
