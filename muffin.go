/*
Package muffin lets model types describe how their test fixtures are built.

A model opts in by implementing FixtureDefiner on its type:

	type User struct {
		ID   string `ext:"ID"`
		Name string
	}

	func (User) FixtureDefinitions() muffin.Definitions {
		return muffin.Definitions{
			muffin.Rules{"Name": generators.FirstName},
			muffin.Callback(func(ctx context.Context, model interface{}, saved bool) error { return nil }),
		}
	}

The loader package routes these definitions into a Registry.
*/
package muffin

import (
	"context"
	"reflect"

	"github.com/adamluzsi/muffin/reflects"
)

// FixtureDefiner is the capability a model type must have to be loaded.
// FixtureDefinitions is called on the zero value of the type,
// so it must not depend on instance state.
type FixtureDefiner interface {
	FixtureDefinitions() Definitions
}

// Definitions is the definition pair of a model.
// Index 0 holds the Rules mapping, index 1 the post generation Callback.
// Both elements are optional.
type Definitions []interface{}

// Rules maps an attribute name to its generation strategy.
// The strategy is opaque for the loader, the Registry decides how to apply it.
type Rules map[string]interface{}

// Callback is invoked after a fixture instance was generated.
type Callback func(ctx context.Context, model interface{}, saved bool) error

const (
	rulesIndex    = 0
	callbackIndex = 1
)

// Rules returns the rules element when it is present and it is a non empty mapping with string keys.
func (d Definitions) Rules() (Rules, bool) {
	if len(d) <= rulesIndex || d[rulesIndex] == nil {
		return nil, false
	}

	switch rules := d[rulesIndex].(type) {
	case Rules:
		return rules, 0 < len(rules)
	case map[string]interface{}:
		return Rules(rules), 0 < len(rules)
	}

	v := reflect.ValueOf(d[rulesIndex])
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String || v.Len() == 0 {
		return nil, false
	}

	rules := make(Rules, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		rules[iter.Key().String()] = iter.Value().Interface()
	}
	return rules, true
}

// Callback returns the callback element when it is present and not empty.
// Zero values such as false, 0 or "" count as empty.
// The value is returned as is, the Registry validates its type.
func (d Definitions) Callback() (interface{}, bool) {
	if len(d) <= callbackIndex || reflects.IsValueEmpty(reflect.ValueOf(d[callbackIndex])) {
		return nil, false
	}
	return d[callbackIndex], true
}

// Generator is a rule strategy that produces the attribute value on each use.
type Generator func() interface{}
