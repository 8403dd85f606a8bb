package reflects

import (
	"fmt"
	"path/filepath"
)

// SymbolicName returns the package name qualified type name, like `muffin.Rules`.
func SymbolicName(i interface{}) string {
	t := BaseTypeOf(i)

	if t.PkgPath() == "" {
		return t.Name()
	}

	return fmt.Sprintf("%s.%s", filepath.Base(t.PkgPath()), t.Name())
}

// FullyQualifiedName returns the import path qualified type name,
// like `"github.com/adamluzsi/muffin".Rules`.
func FullyQualifiedName(i interface{}) string {
	t := BaseTypeOf(i)

	if t.PkgPath() == "" {
		return t.Name()
	}

	return fmt.Sprintf("%q.%s", t.PkgPath(), t.Name())
}
