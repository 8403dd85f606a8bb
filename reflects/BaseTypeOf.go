package reflects

import "reflect"

// BaseTypeOf returns the type behind any number of pointer indirections.
func BaseTypeOf(i interface{}) reflect.Type {
	t := reflect.TypeOf(i)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

func BaseValueOf(i interface{}) reflect.Value {
	v := reflect.ValueOf(i)

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.New(v.Type().Elem()).Elem()
		}
		v = v.Elem()
	}

	return v
}
