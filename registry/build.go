package registry

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/adamluzsi/muffin"
)

func build(def *Definition, attrs muffin.Rules) (interface{}, error) {
	ptr := reflect.New(def.Type())
	elem := ptr.Elem()

	rules := make(muffin.Rules, len(def.Definitions())+len(attrs))
	for attr, strategy := range def.Definitions() {
		rules[attr] = strategy
	}
	for attr, strategy := range attrs {
		rules[attr] = strategy
	}

	for attr, strategy := range rules {
		field, ok := lookupField(elem, attr)
		if !ok {
			return nil, errors.Errorf("%s has no settable attribute %q", def.Name(), attr)
		}

		value := generate(strategy, ptr.Interface())
		if err := assign(field, value); err != nil {
			return nil, errors.Wrapf(err, "%s.%s", def.Name(), attr)
		}
	}

	return ptr.Interface(), nil
}

func generate(strategy interface{}, model interface{}) interface{} {
	switch gen := strategy.(type) {
	case muffin.Generator:
		return gen()
	case func() interface{}:
		return gen()
	case func(model interface{}) interface{}:
		return gen(model)
	default:
		return strategy
	}
}

// lookupField matches the `fixture` tag first, then the exact field name, then the name case insensitively.
func lookupField(elem reflect.Value, attr string) (reflect.Value, bool) {
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	typ := elem.Type()
	match := -1
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		if sf.Tag.Get("fixture") == attr {
			return elem.Field(i), true
		}
		if sf.Name == attr || (match < 0 && strings.EqualFold(sf.Name, attr)) {
			match = i
		}
	}

	if match < 0 {
		return reflect.Value{}, false
	}
	return elem.Field(match), true
}

func assign(field reflect.Value, value interface{}) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case isNumberToString(v.Type(), field.Type()):
		return errors.Errorf("%s value can't be assigned to %s", v.Type(), field.Type())
	case v.Type().ConvertibleTo(field.Type()):
		field.Set(v.Convert(field.Type()))
	default:
		return errors.Errorf("%s value can't be assigned to %s", v.Type(), field.Type())
	}
	return nil
}

func isNumberToString(from, to reflect.Type) bool {
	if to.Kind() != reflect.String {
		return false
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
