// Package stores persists generated fixtures through the host's conventions.
package stores

import (
	"context"
)

const (
	DefaultSaveMethod   = "Save"
	DefaultDeleteMethod = "Delete"
)

// Store is the persistence strategy of a fixture registry.
// The save and delete method names tell the Store which operation of the host to call.
type Store interface {
	SetSaveMethod(name string)
	SetDeleteMethod(name string)
	Persist(ctx context.Context, model interface{}) error
	Delete(ctx context.Context, model interface{}) error
}
