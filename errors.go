package muffin

import "fmt"

// Error is a string based type that allows you to declare ErrConstantValues for your packages
type Error string

// Error implement the error interface, so the Error string type can be used as an error object
func (err Error) Error() string { return string(err) }

const (
	ErrModelNotFound            Error = "model not found"
	ErrModel                    Error = "model error"
	ErrDefinitionAlreadyDefined Error = "definition already defined"
	ErrDefinitionNotFound       Error = "definition not found"
	ErrInvalidCallback          Error = "invalid callback"
	ErrSaveMethodNotFound       Error = "save method not found"
	ErrDeleteMethodNotFound     Error = "delete method not found"
	ErrSaveFailed               Error = "save failed"
	ErrDeleteFailed             Error = "delete failed"
	ErrDeletingFailed           Error = "deleting saved fixtures failed"
)

// ModelNotFoundError is returned when no model list is given to load.
type ModelNotFoundError struct {
	Context string
	Message string
}

func (err *ModelNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrModelNotFound, err.Context, err.Message)
}

func (err *ModelNotFoundError) Is(target error) bool { return target == ErrModelNotFound }

// ModelError is returned when a model can't be loaded,
// such as when it does not implement FixtureDefiner.
type ModelError struct {
	Model   string
	Message string
}

func (err *ModelError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrModel, err.Model, err.Message)
}

func (err *ModelError) Is(target error) bool { return target == ErrModel }
