package muffin

// Registry is the fixture registry the definitions are loaded into.
type Registry interface {
	// Define registers the model type and returns its definition handle.
	// Defining the same model twice yields ErrDefinitionAlreadyDefined.
	Define(model interface{}) (ModelDefinition, error)
	// SetSaveMethod sets the method name used to persist generated fixtures.
	SetSaveMethod(name string)
	// SetDeleteMethod sets the method name used to remove saved fixtures.
	SetDeleteMethod(name string)
}

// ModelDefinition is the per model handle of a Registry.
type ModelDefinition interface {
	SetDefinitions(rules Rules)
	// SetCallback accepts a Callback or a function with the same signature.
	SetCallback(callback interface{}) error
}
