package registry

import (
	"context"
	"reflect"

	"github.com/pkg/errors"

	"github.com/adamluzsi/muffin"
)

// Definition is the registry entry of one model type.
type Definition struct {
	name      string
	modelType reflect.Type
	rules     muffin.Rules
	callback  muffin.Callback
}

func (d *Definition) Name() string { return d.name }

// Type returns the model's base (non pointer) type.
func (d *Definition) Type() reflect.Type { return d.modelType }

func (d *Definition) SetDefinitions(rules muffin.Rules) {
	d.rules = make(muffin.Rules, len(rules))
	for attr, strategy := range rules {
		d.rules[attr] = strategy
	}
}

func (d *Definition) SetCallback(callback interface{}) error {
	switch cb := callback.(type) {
	case muffin.Callback:
		d.callback = cb
	case func(context.Context, interface{}, bool) error:
		d.callback = cb
	case func(interface{}, bool) error:
		d.callback = func(_ context.Context, model interface{}, saved bool) error { return cb(model, saved) }
	default:
		return errors.Wrapf(muffin.ErrInvalidCallback, "%s: %T", d.name, callback)
	}
	return nil
}

func (d *Definition) Definitions() muffin.Rules { return d.rules }

func (d *Definition) Callback() muffin.Callback { return d.callback }
