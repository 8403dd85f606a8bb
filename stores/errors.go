package stores

import (
	"fmt"

	"github.com/adamluzsi/muffin"
)

// MethodError reports a failed save or delete call.
// Kind is one of the muffin save/delete error constants.
type MethodError struct {
	Kind   muffin.Error
	Target string
	Method string
	Err    error
}

func (err *MethodError) Error() string {
	msg := fmt.Sprintf("%s: %s.%s", err.Kind, err.Target, err.Method)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MethodError) Is(target error) bool { return target == err.Kind }

func (err *MethodError) Unwrap() error { return err.Err }
