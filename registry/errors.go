package registry

import (
	"fmt"
	"strings"

	"github.com/adamluzsi/muffin"
)

type DefinitionAlreadyDefinedError struct {
	Name string
}

func (err *DefinitionAlreadyDefinedError) Error() string {
	return fmt.Sprintf("%s: %s", muffin.ErrDefinitionAlreadyDefined, err.Name)
}

func (err *DefinitionAlreadyDefinedError) Is(target error) bool {
	return target == muffin.ErrDefinitionAlreadyDefined
}

type DefinitionNotFoundError struct {
	Name string
}

func (err *DefinitionNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", muffin.ErrDefinitionNotFound, err.Name)
}

func (err *DefinitionNotFoundError) Is(target error) bool {
	return target == muffin.ErrDefinitionNotFound
}

// DeletingFailedError collects the failures of DeleteSaved.
type DeletingFailedError struct {
	Errors []error
}

func (err *DeletingFailedError) Error() string {
	messages := make([]string, 0, len(err.Errors))
	for _, e := range err.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Sprintf("%s:\n%s", muffin.ErrDeletingFailed, strings.Join(messages, "\n"))
}

func (err *DeletingFailedError) Is(target error) bool {
	return target == muffin.ErrDeletingFailed
}
