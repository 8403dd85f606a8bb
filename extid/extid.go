// Package extid locates the external ID field of a fixture model.
// The field is either tagged with `ext:"ID"` or named ID.
package extid

import (
	"fmt"
	"reflect"

	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/reflects"
)

const ErrIDFieldNotFound muffin.Error = "could not locate ID field in the given structure"

// Set stores the string id into the ID field of the pointed structure.
func Set(ptr interface{}, id string) error {
	if reflect.ValueOf(ptr).Kind() != reflect.Ptr {
		return fmt.Errorf("ptr should be given, %T received", ptr)
	}

	_, val, ok := LookupStructField(ptr)
	if !ok {
		return ErrIDFieldNotFound
	}

	if !reflect.TypeOf(id).ConvertibleTo(val.Type()) {
		return fmt.Errorf("ID field type %s can't hold a string id", val.Type())
	}

	val.Set(reflect.ValueOf(id).Convert(val.Type()))
	return nil
}

// Lookup returns the ID value and reports whether it is set.
func Lookup(i interface{}) (id string, ok bool) {
	_, val, ok := LookupStructField(i)
	if !ok || reflects.IsValueEmpty(val) {
		return "", false
	}
	return fmt.Sprint(val.Interface()), true
}

func LookupStructField(ent interface{}) (reflect.StructField, reflect.Value, bool) {
	val := reflects.BaseValueOf(ent)
	if val.Kind() != reflect.Struct {
		return reflect.StructField{}, reflect.Value{}, false
	}

	if sf, byTag, ok := lookupByTag(val); ok {
		return sf, byTag, true
	}

	const upper = `ID`
	if byName := val.FieldByName(upper); byName.Kind() != reflect.Invalid {
		sf, _ := val.Type().FieldByName(upper)
		return sf, byName, true
	}

	return reflect.StructField{}, reflect.Value{}, false
}

func lookupByTag(val reflect.Value) (reflect.StructField, reflect.Value, bool) {
	for i := 0; i < val.NumField(); i++ {
		structField := val.Type().Field(i)

		if tagValue := structField.Tag.Get("ext"); tagValue == "ID" || tagValue == "id" {
			return structField, val.Field(i), true
		}
	}

	return reflect.StructField{}, reflect.Value{}, false
}
