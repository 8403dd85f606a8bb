package stores

import (
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/reflects"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

type operation struct {
	notFound muffin.Error
	failed   muffin.Error
}

var (
	saveOperation   = operation{notFound: muffin.ErrSaveMethodNotFound, failed: muffin.ErrSaveFailed}
	deleteOperation = operation{notFound: muffin.ErrDeleteMethodNotFound, failed: muffin.ErrDeleteFailed}
)

// invoke calls the named method of target.
// A leading context.Context parameter receives ctx, the rest receive args.
// The results may hold an error and/or a bool success flag.
func invoke(ctx context.Context, op operation, target interface{}, name string, args ...interface{}) error {
	targetName := reflects.SymbolicName(target)

	method := reflect.ValueOf(target).MethodByName(name)
	if !method.IsValid() {
		return &MethodError{Kind: op.notFound, Target: targetName, Method: name}
	}

	in, err := arguments(ctx, method.Type(), args)
	if err != nil {
		return &MethodError{Kind: op.notFound, Target: targetName, Method: name, Err: err}
	}

	succeeded := true
	for _, out := range method.Call(in) {
		switch {
		case out.Type() == errorType:
			if !out.IsNil() {
				return &MethodError{Kind: op.failed, Target: targetName, Method: name,
					Err: errors.WithStack(out.Interface().(error))}
			}
		case out.Kind() == reflect.Bool:
			succeeded = out.Bool()
		}
	}

	if !succeeded {
		return &MethodError{Kind: op.failed, Target: targetName, Method: name}
	}
	return nil
}

func arguments(ctx context.Context, mt reflect.Type, args []interface{}) ([]reflect.Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var in []reflect.Value
	if 0 < mt.NumIn() && mt.In(0) == contextType {
		in = append(in, reflect.ValueOf(&ctx).Elem())
	}
	for _, arg := range args {
		in = append(in, reflect.ValueOf(arg))
	}

	if mt.IsVariadic() || len(in) != mt.NumIn() {
		return nil, fmt.Errorf("unsupported method signature: %s", mt)
	}
	for i, arg := range in {
		if !arg.Type().AssignableTo(mt.In(i)) {
			return nil, fmt.Errorf("unsupported method signature: %s", mt)
		}
	}
	return in, nil
}
