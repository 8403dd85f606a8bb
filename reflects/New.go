package reflects

import "reflect"

// New returns a pointer to a new zero value of the base type of i.
func New(i interface{}) interface{} {
	return reflect.New(BaseTypeOf(i)).Interface()
}

func IsValueEmpty(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Slice, reflect.Map, reflect.String:
		return val.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return true
		}
		return IsValueEmpty(val.Elem())
	case reflect.Func, reflect.Chan:
		return val.IsNil()
	default:
		return val.IsZero()
	}
}
